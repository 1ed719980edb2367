package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srharri3/pumsflow/internal/tui"
)

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Query PUMS microdata and browse it interactively",
		Long: `Query the ACS 1-year PUMS API and open the decoded table in an
interactive viewer with keyboard navigation and row search.`,
		RunE: runView,
	}

	addQueryFlags(cmd, "view")

	return cmd
}

func runView(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dataset, err := runQuery(ctx, newQueryEngine(), "view", nil)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	return tui.Run(ctx, dataset)
}
