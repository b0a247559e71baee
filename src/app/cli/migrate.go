package cli

import (
	"github.com/spf13/cobra"

	"bandquiz/src/infra/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list the database migrations",
		Long:      "migrate runs the embedded SQL migrations. Without an argument it applies every pending one.",
		ValidArgs: []string{db.MigrateUp, db.MigrateDown, db.MigrateStatus},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := db.MigrateUp
			if len(args) == 1 {
				direction = args[0]
			}

			cfg, log, err := setup()
			if err != nil {
				return err
			}
			return db.Migrate(cmd.Context(), cfg.Database, direction, log)
		},
	}
}
