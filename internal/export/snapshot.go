package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"specmaster/internal/resolve"
)

// snapshotName is the flat master table written after every processing run.
const snapshotName = "master_specs.csv"

// FileSnapshot archives the merged master as a CSV table in dir after each
// processing run. Writes go through a temp file and rename so a crashed run
// never leaves a half-written snapshot behind.
type FileSnapshot struct {
	dir    string
	logger *slog.Logger
}

func NewFileSnapshot(dir string, logger *slog.Logger) *FileSnapshot {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSnapshot{dir: dir, logger: logger}
}

func (s *FileSnapshot) WriteMaster(_ context.Context, rows []resolve.ResolvedSpec) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, snapshotName+".*")
	if err != nil {
		return fmt.Errorf("snapshot temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write([]string{"param", "value", "unit", "source", "priority", "uploaded_at", "raw"}); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot header: %w", err)
	}
	for _, r := range rows {
		uploaded := ""
		if !r.UploadedAt.IsZero() {
			uploaded = r.UploadedAt.UTC().Format(time.RFC3339)
		}
		record := []string{
			r.Param,
			r.Value,
			r.Unit,
			string(r.Source),
			fmt.Sprintf("%d", r.Priority),
			uploaded,
			r.Raw,
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return fmt.Errorf("snapshot row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot close: %w", err)
	}

	path := filepath.Join(s.dir, snapshotName)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("snapshot rename: %w", err)
	}

	s.logger.Info("snapshot.master.ok", "path", path, "rows", len(rows))
	return nil
}
