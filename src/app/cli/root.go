// Package cli defines the bandquiz command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bandquiz/src/infra/config"
	"bandquiz/src/infra/logger"
)

// NewRootCmd builds the command tree. Running the root command without a
// subcommand serves the API.
func NewRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:   "bandquiz",
		Short: "GraphQL API for bands, quiz questions and posts",
		Long: `bandquiz serves a GraphQL API over PostgreSQL. Related records are
loaded through per-request batch loaders.

Configuration is read from APP_* environment variables and an optional .env file.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newMigrateCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger shared by every
// command.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.Log), nil
}
