package commands

import (
	"github.com/spf13/cobra"

	"github.com/moviegraph/moviegraph/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve search, detail and graph documents over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close(ctx)

		srv := server.NewServer(a.movies, a.logger)
		r := srv.SetupRouter()

		a.logger.Info("serving", "addr", a.cfg.HTTP.Addr)
		return r.Run(a.cfg.HTTP.Addr)
	},
}
