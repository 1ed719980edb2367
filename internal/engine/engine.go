// Package engine orchestrates PUMS queries: the validation gate,
// fetching, decoding, and the multi-year pipeline.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/srharri3/pumsflow/internal/common"
	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
	"github.com/srharri3/pumsflow/internal/validate"
)

// QueryEngine runs validated query specs against a fetcher and decodes
// the responses.
type QueryEngine struct {
	fetcher   service.RowsFetcher
	formatter service.Formatter
	workers   int
}

// Config holds configuration options for the query engine.
type Config struct {
	// Workers caps concurrent year fetches in QueryYears. Zero or one
	// fetches sequentially.
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Workers: 1}
}

// New creates a query engine with the default configuration.
func New(fetcher service.RowsFetcher, formatter service.Formatter) *QueryEngine {
	return NewWithConfig(fetcher, formatter, DefaultConfig())
}

// NewWithConfig creates a query engine with custom configuration.
func NewWithConfig(fetcher service.RowsFetcher, formatter service.Formatter, config Config) *QueryEngine {
	workers := config.Workers
	if workers < 1 {
		workers = 1
	}
	return &QueryEngine{
		fetcher:   fetcher,
		formatter: formatter,
		workers:   workers,
	}
}

// validateSpec runs the query gate and reports the first failed check.
func validateSpec(spec model.QuerySpec) error {
	switch {
	case !validate.Year(spec.Year):
		return fmt.Errorf("year %d outside [%d, %d]: %w",
			spec.Year, model.MinYear, model.MaxYear, common.ErrInvalidQuery)
	case len(spec.NumericVars) == 0:
		return fmt.Errorf("no numeric variables requested: %w", common.ErrInvalidQuery)
	case !validate.NumericVars(spec.NumericVars):
		return fmt.Errorf("unsupported numeric variables %v: %w",
			spec.NumericVars, common.ErrInvalidQuery)
	case !validate.CategoricalVars(spec.CategoricalVars):
		return fmt.Errorf("unsupported categorical variables %v: %w",
			spec.CategoricalVars, common.ErrInvalidQuery)
	case !validate.GeoLevel(spec.GeoLevel):
		return fmt.Errorf("unsupported geography level %q: %w",
			spec.GeoLevel, common.ErrInvalidQuery)
	}
	return nil
}

// Query fetches and decodes one survey year. Nothing touches the
// network until the spec passes the validation gate.
func (e *QueryEngine) Query(ctx context.Context, spec model.QuerySpec) (*model.Dataset, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	logger := slog.With("trace_id", uuid.NewString(), "year", spec.Year)
	logger.Info("Running PUMS query",
		"fields", spec.Fields(),
		"geo_level", model.QueryGeoLevel(spec.GeoLevel),
		"geo_subset", spec.GeoSubset)

	table, err := e.fetcher.Rows(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch year %d: %w", spec.Year, err)
	}

	dataset, err := e.formatter.Format(ctx, table, spec.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to format year %d: %w", spec.Year, err)
	}

	logger.Info("Query complete",
		"rows", dataset.NumRows(),
		"columns", dataset.NumColumns())
	return dataset, nil
}

// QueryYears runs the spec across several survey years and returns one
// combined dataset with a trailing Year column. Result rows keep the
// order years were given in. Any fetch failure aborts the whole call;
// there are no partial results.
//
// Decoding happens once over the combined table, against the last
// year's dictionary vintage. The concatenation leaves later batches'
// header rows embedded in the data; they decode as missing and are
// dropped here by filtering on the first column.
func (e *QueryEngine) QueryYears(ctx context.Context, spec model.QuerySpec, years []int, progress service.ProgressFunc) (*model.Dataset, error) {
	if len(years) == 0 {
		return nil, fmt.Errorf("no years requested: %w", common.ErrInvalidQuery)
	}
	for _, year := range years {
		if err := validateSpec(spec.WithYear(year)); err != nil {
			return nil, err
		}
	}

	logger := slog.With("trace_id", uuid.NewString())
	logger.Info("Running multi-year PUMS query",
		"years", years,
		"workers", e.workers)

	tables := make([]*model.RawTable, len(years))
	var err error
	if e.workers > 1 {
		err = e.fetchConcurrent(ctx, spec, years, tables, progress)
	} else {
		err = e.fetchSequential(ctx, spec, years, tables, progress)
	}
	if err != nil {
		return nil, err
	}

	combined := tables[0]
	for _, table := range tables[1:] {
		combined = combined.Concat(table)
	}

	lastYear := years[len(years)-1]
	dataset, err := e.formatter.Format(ctx, combined, lastYear)
	if err != nil {
		return nil, fmt.Errorf("failed to format combined table: %w", err)
	}

	if dataset.NumColumns() > 0 {
		first := dataset.Columns[0]
		dataset = dataset.FilterRows(func(i int) bool { return !first.MissingAt(i) })
	}

	logger.Info("Multi-year query complete",
		"rows", dataset.NumRows(),
		"columns", dataset.NumColumns())
	return dataset, nil
}

func (e *QueryEngine) fetchSequential(ctx context.Context, spec model.QuerySpec, years []int, tables []*model.RawTable, progress service.ProgressFunc) error {
	for i, year := range years {
		table, err := e.fetcher.Rows(ctx, spec.WithYear(year))
		if err != nil {
			return fmt.Errorf("failed to fetch year %d: %w", year, err)
		}
		tables[i] = table.StampYear(year)
		if progress != nil {
			progress(year, i+1, len(years))
		}
	}
	return nil
}

func (e *QueryEngine) fetchConcurrent(ctx context.Context, spec model.QuerySpec, years []int, tables []*model.RawTable, progress service.ProgressFunc) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	var mu sync.Mutex
	done := 0

	for i, year := range years {
		g.Go(func() error {
			table, err := e.fetcher.Rows(gctx, spec.WithYear(year))
			if err != nil {
				return fmt.Errorf("failed to fetch year %d: %w", year, err)
			}
			tables[i] = table.StampYear(year)

			mu.Lock()
			done++
			completed := done
			mu.Unlock()
			if progress != nil {
				progress(year, completed, len(years))
			}
			return nil
		})
	}

	return g.Wait()
}
