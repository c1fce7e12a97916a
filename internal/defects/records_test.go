package defects

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordsJSON(t *testing.T) {
	records, err := ParseRecordsJSON([]byte(`[
		{"defect_type": "dent", "measured_pressure": 8.5},
		{"defect_type": "crack"}
	]`))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "dent", records[0]["defect_type"])

	// json.Number keeps the numeric comparable by the engine
	f, err := asFloat(records[0]["measured_pressure"])
	require.NoError(t, err)
	assert.InDelta(t, 8.5, f, 1e-9)
}

func TestParseRecordsJSONEmpty(t *testing.T) {
	_, err := ParseRecordsJSON([]byte(`[]`))
	assert.Error(t, err)
}

func TestParseRecordsCSV(t *testing.T) {
	records, err := ParseRecordsCSV([]byte("defect_type,measured_pressure\ndent, 8.5 \ncrack,\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "dent", records[0]["defect_type"])
	assert.Equal(t, "8.5", records[0]["measured_pressure"])
	assert.Equal(t, "", records[1]["measured_pressure"])
}

func TestLoadRecordsDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "defects.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"defect_type":"tear","tear_size":2}]`), 0o644))
	records, err := LoadRecords(jsonPath)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	csvPath := filepath.Join(dir, "defects.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("defect_type\ntear\n"), 0o644))
	records, err = LoadRecords(csvPath)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
