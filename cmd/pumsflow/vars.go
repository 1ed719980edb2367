package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srharri3/pumsflow/internal/cli"
	"github.com/srharri3/pumsflow/internal/model"
)

func varsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "List the supported variables and geography levels",
		Run:   runVars,
	}
}

func runVars(cmd *cobra.Command, _ []string) {
	rows := make([][]string, 0, len(model.Catalog))
	for _, field := range model.Catalog {
		rows = append(rows, []string{field.Name, field.Class.String(), field.Label})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("PUMS Field Catalog"))
	fmt.Fprint(out, cli.RenderTable([]string{"Name", "Type", "Description"}, rows))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf(
		"Geography levels: %s", strings.Join(model.GeoLevels, ", "))))
	fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf(
		"Supported years: %d-%d", model.MinYear, model.MaxYear)))
}
