package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/moviegraph/moviegraph/internal/console"
	"github.com/moviegraph/moviegraph/internal/export"
	"github.com/moviegraph/moviegraph/internal/movie"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive menu loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close(ctx)

		c := console.New(
			a.movies,
			movie.NewSession(),
			export.NewWriter(a.cfg.Export.Dir),
			a.logger,
			os.Stdin,
			os.Stdout,
		)
		return c.Run(ctx)
	},
}
