package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srharri3/pumsflow/internal/cli"
	"github.com/srharri3/pumsflow/internal/model"
)

func dictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict VARIABLE",
		Short: "Show the code dictionary for a variable",
		Long: `Fetch and display the code-to-label dictionary for a PUMS variable.

Catalog names are translated to their upstream dictionary tokens (State
is published as ST); anything else is passed to the API verbatim.`,
		Args: cobra.ExactArgs(1),
		RunE: runDict,
	}

	cmd.Flags().IntP("year", "y", model.DefaultQuerySpec().Year, "Survey year of the dictionary")
	_ = viper.BindPFlag("dict.year", cmd.Flags().Lookup("year"))

	return cmd
}

func runDict(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	year := viper.GetInt("dict.year")

	token := args[0]
	if field, ok := model.FieldByName(token); ok {
		token = field.LookupToken()
	}

	lk, err := newLookupResolver().Resolve(ctx, token, year)
	if err != nil {
		return fmt.Errorf("failed to fetch dictionary: %w", err)
	}

	rows := make([][]string, 0, lk.Len())
	for _, entry := range lk.Entries {
		rows = append(rows, []string{entry.Code, entry.Label})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%s (%d)", token, year)))
	fmt.Fprint(out, cli.RenderTable([]string{"Code", "Label"}, rows))
	fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("%d codes", lk.Len())))

	return nil
}
