package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
)

// JSONExporter writes datasets as a JSON array of row objects, one key
// per column. Missing cells serialize as null.
type JSONExporter struct {
	dir string
}

// NewJSONExporter creates an exporter writing into dir.
func NewJSONExporter(dir string) *JSONExporter {
	return &JSONExporter{dir: dir}
}

// Export writes the dataset to <dir>/<name>.json.
func (e *JSONExporter) Export(ctx context.Context, dataset *model.Dataset, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(e.dir, 0750); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}
	path := filepath.Join(e.dir, filename)

	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	names := uniqueColumnNames(dataset)
	rows := make([]map[string]any, 0, dataset.NumRows())
	for i := 0; i < dataset.NumRows(); i++ {
		row := make(map[string]any, len(names))
		for j, col := range dataset.Columns {
			row[names[j]] = cellValue(col, i)
		}
		rows = append(rows, row)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	slog.Info("Exported dataset to JSON",
		"path", path,
		"rows", dataset.NumRows(),
		"columns", dataset.NumColumns())
	return nil
}

var _ service.Exporter = (*JSONExporter)(nil)
