package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moviegraph/moviegraph/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <title>",
	Short: "Write the graph document for one movie without the menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close(ctx)

		rec, err := a.movies.Detail(ctx, args[0])
		if err != nil {
			return err
		}

		path, err := export.NewWriter(a.cfg.Export.Dir).Write(rec)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Graph written to %s\n", path)
		return nil
	},
}
