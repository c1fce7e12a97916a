package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"specmaster/constants"
	"specmaster/internal/entity"
	"specmaster/internal/resolve"
)

type stubVariants struct {
	rows []entity.SpecVariant
}

func (s *stubVariants) Upsert(context.Context, *entity.SpecVariant) (*entity.SpecVariant, bool, error) {
	panic("not used")
}

func (s *stubVariants) UpsertOverride(context.Context, string, string, string, constants.SourceType) (*entity.SpecVariant, error) {
	panic("not used")
}

func (s *stubVariants) ListAll(context.Context) ([]entity.SpecVariant, error) {
	return s.rows, nil
}

func (s *stubVariants) ListByParam(context.Context, string) ([]entity.SpecVariant, error) {
	return s.rows, nil
}

func sampleVariants() []entity.SpecVariant {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return []entity.SpecVariant{
		{
			Param: "cap_diameter", Value: "25.0", Unit: "mm", Raw: "Cap diameter: 25mm",
			Source: constants.SourcePDF, Origin: "sheet.pdf",
			Priority: constants.PriorityPDF, UploadedAt: base,
		},
		{
			Param: "cap_diameter", Value: "26.0", Unit: "mm", Raw: "Cap diameter: 26mm",
			Source: constants.SourceDOCX, Origin: "sheet.docx",
			Priority: constants.PriorityDOCX, UploadedAt: base.Add(time.Hour),
		},
		{
			Param: "material_type", Value: "steel", Raw: "Material: steel",
			Source: constants.SourceDOCX, Origin: "sheet.docx",
			Priority: constants.PriorityDOCX, UploadedAt: base,
		},
	}
}

func TestExportMasterXLSX(t *testing.T) {
	svc := NewService(&stubVariants{rows: sampleVariants()}, nil)

	data, err := svc.ExportMasterXLSX(context.Background(), constants.StrategyPriority)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Master Specs")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 parameters

	assert.Equal(t, "Parameter", rows[0][0])

	// DOCX beats PDF for cap_diameter under the priority strategy
	assert.Equal(t, "cap_diameter", rows[1][0])
	assert.Equal(t, "26.0", rows[1][1])
	assert.Equal(t, "DOCX", rows[1][3])
	assert.Equal(t, "material_type", rows[2][0])
	assert.Equal(t, "steel", rows[2][1])
}

func TestExportDefectsXLSX(t *testing.T) {
	svc := NewService(&stubVariants{}, nil)

	records := []map[string]any{
		{"defect_type": "dent", "measured_pressure": 8.0},
		{"defect_type": "crack"},
	}
	data, err := svc.ExportDefectsXLSX(records, []string{"Repairable", "Not Repairable"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Defect Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"defect_type", "measured_pressure", "Decision"}, rows[0])
	assert.Equal(t, "dent", rows[1][0])
	assert.Equal(t, "Repairable", rows[1][2])
	assert.Equal(t, "crack", rows[2][0])
}

func TestExportDefectsXLSXLengthMismatch(t *testing.T) {
	svc := NewService(&stubVariants{}, nil)
	_, err := svc.ExportDefectsXLSX([]map[string]any{{"defect_type": "dent"}}, nil)
	assert.Error(t, err)
}

func TestFileSnapshotWriteMaster(t *testing.T) {
	dir := t.TempDir()
	snap := NewFileSnapshot(dir, nil)

	rows := []resolve.ResolvedSpec{
		{Param: "cap_diameter", Value: "26.0", Unit: "mm", Source: constants.SourceDOCX, Priority: 1, Raw: "Cap diameter: 26mm"},
	}
	require.NoError(t, snap.WriteMaster(context.Background(), rows))

	data, err := os.ReadFile(filepath.Join(dir, "master_specs.csv"))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"param", "value", "unit", "source", "priority", "uploaded_at", "raw"}, records[0])
	assert.Equal(t, "cap_diameter", records[1][0])
	assert.Equal(t, "26.0", records[1][1])
	assert.Equal(t, "DOCX", records[1][3])

	// overwrite keeps exactly one snapshot file
	require.NoError(t, snap.WriteMaster(context.Background(), rows))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
