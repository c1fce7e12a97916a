package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specmaster/constants"
	"specmaster/internal/entity"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func variant(param, value string, source constants.SourceType, minutes int) entity.SpecVariant {
	return entity.SpecVariant{
		Param:      param,
		Value:      value,
		Unit:       "mm",
		Raw:        param + " " + value,
		Source:     source,
		Origin:     string(source) + ".doc",
		Priority:   constants.PriorityForSource(source),
		UploadedAt: base.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestMergePriorityPicksLowestRank(t *testing.T) {
	variants := []entity.SpecVariant{
		variant("cap_diameter", "26.0", constants.SourceImage, 2),
		variant("cap_diameter", "25.0", constants.SourceDOCX, 0),
		variant("cap_diameter", "25.5", constants.SourcePDF, 1),
	}

	merged := Merge(variants, constants.StrategyPriority)
	require.Len(t, merged, 1)
	assert.Equal(t, "25.0", merged[0].Value)
	assert.Equal(t, constants.SourceDOCX, merged[0].Source)

	// monotonicity: chosen priority is the minimum present
	minPriority := variants[0].Priority
	for _, v := range variants {
		if v.Priority < minPriority {
			minPriority = v.Priority
		}
	}
	assert.Equal(t, minPriority, merged[0].Priority)
}

func TestMergePriorityTieBreaksByRecency(t *testing.T) {
	variants := []entity.SpecVariant{
		variant("cap_diameter", "25.0", constants.SourcePDF, 0),
		variant("cap_diameter", "25.4", constants.SourcePDF, 5),
	}
	merged := Merge(variants, constants.StrategyPriority)
	require.Len(t, merged, 1)
	assert.Equal(t, "25.4", merged[0].Value)
}

func TestMergeOverrideSupremacy(t *testing.T) {
	user := variant("cap_diameter", "24.0", constants.SourceUser, 0)
	user.Priority = constants.PriorityUser
	user.Unit = "mm"
	variants := []entity.SpecVariant{
		variant("cap_diameter", "25.0", constants.SourceDOCX, 10),
		variant("cap_diameter", "26.0", constants.SourcePDF, 20),
		user,
	}
	merged := Merge(variants, constants.StrategyPriority)
	require.Len(t, merged, 1)
	assert.Equal(t, "24.0", merged[0].Value)
	assert.Equal(t, constants.SourceUser, merged[0].Source)
}

func TestMergeLatestIgnoresPriority(t *testing.T) {
	variants := []entity.SpecVariant{
		variant("cap_diameter", "25.0", constants.SourceDOCX, 0),
		variant("cap_diameter", "26.0", constants.SourceImage, 30),
	}
	merged := Merge(variants, constants.StrategyLatest)
	require.Len(t, merged, 1)
	assert.Equal(t, "26.0", merged[0].Value)
}

func TestMergeMultipleParamsSorted(t *testing.T) {
	variants := []entity.SpecVariant{
		variant("max_pressure", "10.0", constants.SourcePDF, 0),
		variant("cap_diameter", "25.0", constants.SourceDOCX, 0),
	}
	merged := Merge(variants, constants.StrategyPriority)
	require.Len(t, merged, 2)
	assert.Equal(t, "cap_diameter", merged[0].Param)
	assert.Equal(t, "max_pressure", merged[1].Param)
}

func TestGroupAllPreservesHistory(t *testing.T) {
	variants := []entity.SpecVariant{
		variant("cap_diameter", "26.0", constants.SourceImage, 10),
		variant("cap_diameter", "25.0", constants.SourceDOCX, 0),
		variant("max_pressure", "10.0", constants.SourcePDF, 5),
	}
	grouped := GroupAll(variants)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["cap_diameter"], 2)
	// ordered by insertion time
	assert.Equal(t, "25.0", grouped["cap_diameter"][0].Value)
	assert.Equal(t, "26.0", grouped["cap_diameter"][1].Value)
}

func TestRawPreservesDuplicates(t *testing.T) {
	variants := []entity.SpecVariant{
		variant("cap_diameter", "25.0", constants.SourceDOCX, 0),
		variant("cap_diameter", "25.0", constants.SourceDOCX, 1),
	}
	rows := Raw(variants)
	assert.Len(t, rows, 2)
}

func TestBuildMaster(t *testing.T) {
	variants := []entity.SpecVariant{
		variant("max_pressure", "10.0", constants.SourcePDF, 0),
		variant("max_pressure", "12.0", constants.SourceImage, 5),
	}
	master := BuildMaster(variants)

	v, ok := master.ChosenValue("max_pressure")
	require.True(t, ok)
	assert.Equal(t, "10.0", v)
	assert.Len(t, master["max_pressure"].Variants, 2)

	_, ok = master.ChosenValue("cap_diameter")
	assert.False(t, ok)
}

func TestChosenValueEmptyValueUnresolved(t *testing.T) {
	v := variant("material_type", "", constants.SourceDOCX, 0)
	master := BuildMaster([]entity.SpecVariant{v})
	_, ok := master.ChosenValue("material_type")
	assert.False(t, ok)
}
