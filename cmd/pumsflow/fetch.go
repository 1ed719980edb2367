package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srharri3/pumsflow/internal/cli"
	"github.com/srharri3/pumsflow/internal/service"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Query PUMS microdata and export the decoded table",
		Long: `Query the ACS 1-year PUMS API for the requested variables, decode the
coded responses into labeled columns, and print or export the result.

Multi-year queries fetch each year separately, stamp rows with their
originating year, and decode the combined table in one pass.`,
		RunE: runFetch,
	}

	addQueryFlags(cmd, "fetch")

	cmd.Flags().String("export", "", "Export target (csv, json, sqlite, sheets)")
	cmd.Flags().StringP("output", "o", "", "Export destination (directory for csv/json, file for sqlite)")
	cmd.Flags().String("name", "pums", "Export name (file stem, table, or sheet)")
	cmd.Flags().Int("preview", 10, "Rows to print after fetching (0 disables)")
	cmd.Flags().Bool("progress", true, "Show a progress bar for multi-year queries")

	_ = viper.BindPFlag("fetch.export", cmd.Flags().Lookup("export"))
	_ = viper.BindPFlag("fetch.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("fetch.name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("fetch.preview", cmd.Flags().Lookup("preview"))
	_ = viper.BindPFlag("fetch.progress", cmd.Flags().Lookup("progress"))

	return cmd
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	slog.Info(cli.FormatTitle("Fetching PUMS microdata"))

	var progress service.ProgressFunc
	if viper.GetBool("fetch.progress") && yearCount("fetch") > 1 {
		bar := cli.NewFetchProgress(os.Stderr, yearCount("fetch"))
		progress = cli.ProgressCallback(bar)
	}

	dataset, err := runQuery(ctx, newQueryEngine(), "fetch", progress)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Fetched %d rows, %d columns", dataset.NumRows(), dataset.NumColumns())))

	if preview := viper.GetInt("fetch.preview"); preview > 0 {
		fmt.Fprint(cmd.OutOrStdout(), cli.RenderDataset(dataset, preview))
	}

	kind := viper.GetString("fetch.export")
	if kind == "" {
		return nil
	}

	exporter, cleanup, err := newExporter(ctx, kind, viper.GetString("fetch.output"))
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	name := viper.GetString("fetch.name")
	if err := exporter.Export(ctx, dataset, name); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Exported %q via %s", name, kind)))
	return nil
}
