package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srharri3/pumsflow/internal/census"
	"github.com/srharri3/pumsflow/internal/config"
	"github.com/srharri3/pumsflow/internal/engine"
	"github.com/srharri3/pumsflow/internal/export"
	"github.com/srharri3/pumsflow/internal/export/sheets"
	"github.com/srharri3/pumsflow/internal/format"
	"github.com/srharri3/pumsflow/internal/lookup"
	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
)

// newCensusClient builds the API client from configured settings.
func newCensusClient() *census.Client {
	settings := config.LoadCensusSettings()
	client := census.NewClient(settings.Host, settings.APIKey)
	if settings.Timeout > 0 {
		client.SetTimeout(settings.Timeout)
	}
	return client
}

// newQueryEngine wires the Census client, lookup resolver, and formatter
// into a query engine using the configured worker count.
func newQueryEngine() *engine.QueryEngine {
	client := newCensusClient()
	formatter := format.New(lookup.NewResolver(client))

	return engine.NewWithConfig(client, formatter, engine.Config{
		Workers: config.LoadWorkers(),
	})
}

// newLookupResolver wires a resolver against the configured Census host.
func newLookupResolver() service.LookupResolver {
	return lookup.NewResolver(newCensusClient())
}

// parseYears converts year arguments to integers. Anything that is not a
// plain integer is rejected here so a typo like "2021.5" never reaches
// the API.
func parseYears(args []string) ([]int, error) {
	years := make([]int, 0, len(args))
	for _, arg := range args {
		year, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: must be an integer", arg)
		}
		years = append(years, year)
	}
	return years, nil
}

// addQueryFlags registers the query parameter flags shared by fetch and
// view, bound to viper under the given prefix.
func addQueryFlags(cmd *cobra.Command, prefix string) {
	defaults := model.DefaultQuerySpec()

	cmd.Flags().IntP("year", "y", defaults.Year, "Survey year to query")
	cmd.Flags().StringSlice("years", nil, "Survey years for a multi-year query (overrides --year)")
	cmd.Flags().StringSlice("numeric", defaults.NumericVars, "Numeric variables (PWGTP is always included)")
	cmd.Flags().StringSlice("categorical", defaults.CategoricalVars, "Categorical variables")
	cmd.Flags().String("geo", defaults.GeoLevel, "Geography level (All, Region, Division, State)")
	cmd.Flags().StringSlice("geo-codes", defaults.GeoSubset, "Geography codes to subset at that level")

	_ = viper.BindPFlag(prefix+".year", cmd.Flags().Lookup("year"))
	_ = viper.BindPFlag(prefix+".years", cmd.Flags().Lookup("years"))
	_ = viper.BindPFlag(prefix+".numeric", cmd.Flags().Lookup("numeric"))
	_ = viper.BindPFlag(prefix+".categorical", cmd.Flags().Lookup("categorical"))
	_ = viper.BindPFlag(prefix+".geo", cmd.Flags().Lookup("geo"))
	_ = viper.BindPFlag(prefix+".geo_codes", cmd.Flags().Lookup("geo-codes"))
}

// querySpecFromViper assembles a query spec from flags bound under the
// given prefix.
func querySpecFromViper(prefix string) model.QuerySpec {
	return model.QuerySpec{
		Year:            viper.GetInt(prefix + ".year"),
		NumericVars:     viper.GetStringSlice(prefix + ".numeric"),
		CategoricalVars: viper.GetStringSlice(prefix + ".categorical"),
		GeoLevel:        viper.GetString(prefix + ".geo"),
		GeoSubset:       viper.GetStringSlice(prefix + ".geo_codes"),
	}
}

// runQuery executes the spec as a single- or multi-year query depending
// on whether --years was given.
func runQuery(ctx context.Context, eng *engine.QueryEngine, prefix string, progress service.ProgressFunc) (*model.Dataset, error) {
	spec := querySpecFromViper(prefix)

	yearArgs := viper.GetStringSlice(prefix + ".years")
	if len(yearArgs) == 0 {
		return eng.Query(ctx, spec)
	}

	years, err := parseYears(yearArgs)
	if err != nil {
		return nil, err
	}

	return eng.QueryYears(ctx, spec, years, progress)
}

// yearCount reports how many fetches the bound flags will trigger.
func yearCount(prefix string) int {
	if n := len(viper.GetStringSlice(prefix + ".years")); n > 0 {
		return n
	}
	return 1
}

// newExporter builds the exporter selected by kind. The returned cleanup
// function releases any resources the exporter holds and is nil when
// there is nothing to release.
func newExporter(ctx context.Context, kind, output string) (service.Exporter, func(), error) {
	switch kind {
	case "csv":
		dir := output
		if dir == "" {
			dir = "."
		}
		return export.NewCSVExporter(config.ExpandPath(dir)), nil, nil

	case "json":
		dir := output
		if dir == "" {
			dir = "."
		}
		return export.NewJSONExporter(config.ExpandPath(dir)), nil, nil

	case "sqlite":
		path := output
		if path == "" {
			path = "$HOME/.local/share/pumsflow/pums.db"
		}
		exporter, err := export.NewSQLiteExporter(config.ExpandPath(path))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		cleanup := func() {
			if closeErr := exporter.Close(); closeErr != nil {
				slog.Warn("Failed to close database", "error", closeErr)
			}
		}
		return exporter, cleanup, nil

	case "sheets":
		cfg, err := config.LoadSheetsConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load sheets config: %w", err)
		}
		writer, err := sheets.NewWriter(ctx, *cfg, slog.Default())
		if err != nil {
			return nil, nil, err
		}
		return writer, nil, nil
	}

	return nil, nil, fmt.Errorf("unknown export kind %q: use csv, json, sqlite, or sheets", kind)
}
