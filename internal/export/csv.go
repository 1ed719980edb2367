// Package export writes formatted datasets to local files, SQLite
// databases, and Google Sheets.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
)

// CSVExporter writes datasets to comma-separated files under a
// directory. Missing cells render empty.
type CSVExporter struct {
	dir string
}

// NewCSVExporter creates an exporter writing into dir.
func NewCSVExporter(dir string) *CSVExporter {
	return &CSVExporter{dir: dir}
}

// Export writes the dataset to <dir>/<name>.csv, header row first.
func (e *CSVExporter) Export(ctx context.Context, dataset *model.Dataset, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(e.dir, 0750); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".csv") {
		filename += ".csv"
	}
	path := filepath.Join(e.dir, filename)

	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(dataset.Names()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < dataset.NumRows(); i++ {
		if err := w.Write(dataset.Row(i)); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	slog.Info("Exported dataset to CSV",
		"path", path,
		"rows", dataset.NumRows(),
		"columns", dataset.NumColumns())
	return nil
}

// Ensure CSVExporter implements the exporter interface.
var _ service.Exporter = (*CSVExporter)(nil)
