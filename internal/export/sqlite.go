package export

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// tableNamePattern limits export table names to plain identifiers so
// they can be interpolated into DDL.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteExporter writes datasets into a SQLite database, one table per
// export. Exporting to an existing table replaces it.
type SQLiteExporter struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteExporter opens (or creates) the database at dbPath.
func NewSQLiteExporter(dbPath string) (*SQLiteExporter, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteExporter{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (e *SQLiteExporter) Close() error {
	return e.db.Close()
}

// Export writes the dataset into the named table. Column affinities
// follow the series kinds and missing values store as NULL.
func (e *SQLiteExporter) Export(ctx context.Context, dataset *model.Dataset, name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name %q", name)
	}

	columns := columnDefs(dataset)

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %q", name)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", name, err)
	}

	ddl := fmt.Sprintf("CREATE TABLE %q (%s)", name, joinDefs(columns))
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}

	insert := insertStatement(name, columns)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := 0; i < dataset.NumRows(); i++ {
		args := make([]any, len(dataset.Columns))
		for j, col := range dataset.Columns {
			args[j] = cellValue(col, i)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}

	slog.Info("Exported dataset to SQLite",
		"path", e.dbPath,
		"table", name,
		"rows", dataset.NumRows())
	return nil
}

type columnDef struct {
	name     string
	affinity string
}

// columnDefs maps series to column definitions, suffixing duplicate
// names so the DDL stays valid.
func columnDefs(dataset *model.Dataset) []columnDef {
	names := uniqueColumnNames(dataset)
	defs := make([]columnDef, 0, len(names))
	for i, col := range dataset.Columns {
		defs = append(defs, columnDef{name: names[i], affinity: affinity(col.Kind())})
	}
	return defs
}

// uniqueColumnNames returns the dataset's column names with duplicates
// suffixed _2, _3, and so on, for exporters that key cells by name.
func uniqueColumnNames(dataset *model.Dataset) []string {
	names := make([]string, 0, len(dataset.Columns))
	seen := make(map[string]int, len(dataset.Columns))
	for _, col := range dataset.Columns {
		name := col.Name()
		if n := seen[col.Name()]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[col.Name()]++
		names = append(names, name)
	}
	return names
}

func affinity(kind model.SeriesKind) string {
	switch kind {
	case model.KindFloat:
		return "REAL"
	case model.KindInt:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func joinDefs(defs []columnDef) string {
	out := ""
	for i, def := range defs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q %s", def.name, def.affinity)
	}
	return out
}

func insertStatement(table string, defs []columnDef) string {
	names := ""
	marks := ""
	for i, def := range defs {
		if i > 0 {
			names += ", "
			marks += ", "
		}
		names += fmt.Sprintf("%q", def.name)
		marks += "?"
	}
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)", table, names, marks)
}

func cellValue(col model.Series, i int) any {
	if col.MissingAt(i) {
		return nil
	}
	switch col.Kind() {
	case model.KindFloat:
		return col.FloatAt(i)
	case model.KindInt:
		return col.IntAt(i)
	default:
		return col.StringAt(i)
	}
}

// Ensure SQLiteExporter implements the exporter interface.
var _ service.Exporter = (*SQLiteExporter)(nil)
