// Package service defines the interfaces the application's components
// are wired through.
package service

import (
	"context"
	"time"

	"github.com/srharri3/pumsflow/internal/model"
)

// RowsFetcher retrieves raw microdata tables from the PUMS data
// endpoint. Implementations return the response exactly as sent, with
// row 0 holding the header labels.
type RowsFetcher interface {
	Rows(ctx context.Context, spec model.QuerySpec) (*model.RawTable, error)
}

// DictionaryFetcher retrieves the raw code to label map published for
// one variable in one survey year.
type DictionaryFetcher interface {
	Dictionary(ctx context.Context, varName string, year int) (map[string]string, error)
}

// LookupResolver resolves ordered variable dictionaries. Resolvers are
// safe for concurrent use; repeated calls for the same variable and
// year are expected to hit a cache.
type LookupResolver interface {
	Resolve(ctx context.Context, varName string, year int) (model.Lookup, error)
}

// Formatter turns one raw table into a typed dataset. The year selects
// which vintage of the variable dictionaries decodes the codes.
type Formatter interface {
	Format(ctx context.Context, table *model.RawTable, year int) (*model.Dataset, error)
}

// Exporter writes a formatted dataset to a destination. The name is
// the destination-specific title: a sheet tab, a table name, a file
// stem.
type Exporter interface {
	Export(ctx context.Context, dataset *model.Dataset, name string) error
}

// ProgressFunc reports multi-year fetch progress after each year
// completes.
type ProgressFunc func(year, done, total int)

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
