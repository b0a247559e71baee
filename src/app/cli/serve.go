package cli

import (
	"github.com/spf13/cobra"

	"bandquiz/src/app/server"
	"bandquiz/src/infra/db"
	"bandquiz/src/infra/repo"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			log.Info("starting application",
				"port", cfg.Server.Port,
				"log_level", cfg.Log.Level,
				"loader_max_batch", cfg.Loader.MaxBatch,
			)

			ctx := cmd.Context()
			if migrate {
				if err := db.Migrate(ctx, cfg.Database, db.MigrateUp, log); err != nil {
					return err
				}
			}

			pg, err := db.New(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer pg.Close()

			srv, err := server.New(cfg, log, repo.NewPostgresRepository(pg, log))
			if err != nil {
				return err
			}

			// Run blocks until shutdown signal is received
			return srv.Run()
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}
