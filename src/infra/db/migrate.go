package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"bandquiz/src/infra/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migration directions accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate applies the embedded schema migrations in the given direction.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, direction string, log *slog.Logger) error {
	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer conn.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, conn, migrationsFS())
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	switch direction {
	case MigrateUp:
		results, err := provider.Up(ctx)
		for _, r := range results {
			log.Info("migration applied", "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
		}
		return err
	case MigrateDown:
		r, err := provider.Down(ctx)
		if r != nil {
			log.Info("migration rolled back", "version", r.Source.Version, "path", r.Source.Path)
		}
		return err
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			log.Info("migration status", "version", s.Source.Version, "path", s.Source.Path, "state", s.State)
		}
		return nil
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
}
