package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 11, c.Len())
	assert.True(t, c.Has("cap_diameter"))
	assert.True(t, c.Has("max_pressure"))
	assert.False(t, c.Has("coating_required"))
}

func TestNewRejectsBadEntries(t *testing.T) {
	_, err := New([]Parameter{{ID: "", Labels: []string{"x"}}})
	assert.Error(t, err)

	_, err = New([]Parameter{{ID: "a", Labels: nil}})
	assert.Error(t, err)

	_, err = New([]Parameter{
		{ID: "a", Labels: []string{"x"}},
		{ID: "a", Labels: []string{"y"}},
	})
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`[
		{"id": "cap_diameter", "labels": ["cap diameter", "cap dia"]},
		{"id": "max_pressure", "labels": ["max pressure"]}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"cap diameter", "cap dia"}, c.Parameters()[0].Labels)
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	// uppercase id
	_, err := Parse([]byte(`[{"id": "CapDiameter", "labels": ["cap diameter"]}]`))
	assert.Error(t, err)

	// missing labels
	_, err = Parse([]byte(`[{"id": "cap_diameter"}]`))
	assert.Error(t, err)

	// empty catalog
	_, err = Parse([]byte(`[]`))
	assert.Error(t, err)
}
