package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"specmaster/constants"
	"specmaster/internal/repository"
	"specmaster/internal/resolve"
)

// Service is a tiny façade over the variant store that produces XLSX bytes
// for exports.
type Service struct {
	variants repository.VariantRepository
	logger   *slog.Logger
}

func NewService(variants repository.VariantRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{variants: variants, logger: logger}
}

// ExportMasterXLSX returns an XLSX workbook (as bytes) holding the merged
// master resolved under the given strategy.
func (s *Service) ExportMasterXLSX(ctx context.Context, strategy constants.Strategy) ([]byte, error) {
	start := time.Now()

	all, err := s.variants.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query variants: %w", err)
	}
	rows := resolve.Merge(all, strategy)

	buf, err := masterWorkbook(rows)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.master.ok",
		"strategy", string(strategy),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

func masterWorkbook(rows []resolve.ResolvedSpec) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Master Specs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Parameter", "Value", "Unit", "Source", "Priority", "Uploaded At", "Raw Line"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Param)
		write(2, r.Value)
		write(3, r.Unit)
		write(4, string(r.Source))
		write(5, r.Priority)
		if !r.UploadedAt.IsZero() {
			write(6, r.UploadedAt.UTC().Format(time.RFC3339))
		} else {
			write(6, "")
		}
		write(7, r.Raw)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24) // parameter
	_ = f.SetColWidth(sheet, "B", "C", 12) // value, unit
	_ = f.SetColWidth(sheet, "D", "D", 10) // source
	_ = f.SetColWidth(sheet, "F", "F", 22) // timestamp
	_ = f.SetColWidth(sheet, "G", "G", 48) // raw line

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportDefectsXLSX returns an XLSX workbook holding the defect records with
// their decisions appended as the last column. Records and decisions pair by
// index.
func (s *Service) ExportDefectsXLSX(records []map[string]any, decisions []string) ([]byte, error) {
	if len(records) != len(decisions) {
		return nil, fmt.Errorf("records (%d) and decisions (%d) must pair by index", len(records), len(decisions))
	}

	f := excelize.NewFile()
	const sheet = "Defect Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	fields := recordFields(records)
	for i, h := range fields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	decisionCol := len(fields) + 1
	cell, _ := excelize.CoordinatesToCellName(decisionCol, 1)
	_ = f.SetCellValue(sheet, cell, "Decision")

	for i, record := range records {
		row := i + 2
		for col, field := range fields {
			if v, ok := record[field]; ok {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
		}
		cell, _ := excelize.CoordinatesToCellName(decisionCol, row)
		_ = f.SetCellValue(sheet, cell, decisions[i])
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.defects.ok", "rows", len(records))
	return buf.Bytes(), nil
}

// recordFields returns the union of record keys, defect_type first and the
// rest alphabetical, so the column order is stable across exports.
func recordFields(records []map[string]any) []string {
	seen := map[string]struct{}{}
	var fields []string
	for _, r := range records {
		for k := range r {
			if _, ok := seen[k]; ok || k == "defect_type" {
				continue
			}
			seen[k] = struct{}{}
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	return append([]string{"defect_type"}, fields...)
}
