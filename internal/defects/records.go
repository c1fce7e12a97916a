package defects

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseRecordsJSON decodes a JSON array of defect records. Numbers decode
// as json.Number so comparisons never lose precision to float round-trips.
func ParseRecordsJSON(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("unmarshal defect records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("defect records are empty")
	}
	return records, nil
}

// ParseRecordsCSV decodes a CSV defect table. The header row names the
// record fields; cell values stay strings and the engine coerces them at
// comparison time.
func ParseRecordsCSV(data []byte) ([]map[string]any, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read defect csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("defect csv needs a header row and at least one record")
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]any, len(header))
		for i, field := range header {
			if field == "" || i >= len(row) {
				continue
			}
			record[field] = strings.TrimSpace(row[i])
		}
		records = append(records, record)
	}
	return records, nil
}

// LoadRecords reads defect records from a JSON or CSV file.
func LoadRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defect records: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseRecordsCSV(data)
	}
	return ParseRecordsJSON(data)
}
