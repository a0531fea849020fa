package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// Migrate applies the embedded migrations up to the latest version, or down
// to target when target is non-negative.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, target int32) error {
	conn, err := pgx.Connect(ctx, DSN(cfg.Database))
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	if err := loadMigrations(m); err != nil {
		return err
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	to := int32(len(m.Migrations))
	if target >= 0 {
		to = target
	}

	if err := m.MigrateTo(ctx, to); err != nil {
		return fmt.Errorf("migrating from %d to %d: %w", from, to, err)
	}

	if from == to {
		logger.Info().Msgf("database schema up to date, version %d", to)
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, to)
	}
	return nil
}

func loadMigrations(m *tern.Migrator) error {
	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}
	return nil
}
