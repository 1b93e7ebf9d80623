package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fift2939-create/ather1/internal/drafting"
	"github.com/fift2939-create/ather1/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var origins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the drafting API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := app.log()
			factory := app.Drafters
			if factory == nil {
				factory = drafting.NewDrafterFactory(app.observer(app.Config, log))
			}
			if !app.Config.HasCredential() {
				log.Warn("no API key configured; drafting requests need an X-Api-Key header",
					"provider", app.Config.Provider)
			}

			srv := server.NewServer(server.RouterConfig{
				ProposalHandler: server.NewProposalHandler(app.Config, factory),
				HealthHandler:   server.NewHealthHandler(),
				Logger:          log,
				AllowOrigins:    origins,
			})
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringSliceVar(&origins, "origin", nil, "extra CORS origin (repeatable)")
	return cmd
}
