package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_resumes_table",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createResumesTable(ctx, pool)
			},
		},
		{
			Name: "index_resumes_updated_at",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return indexResumesUpdatedAt(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createResumesTable creates the snapshot table if it doesn't exist
func createResumesTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			full_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			data JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}

	slog.Info("Successfully ensured resumes table")
	return nil
}

// indexResumesUpdatedAt backs the newest-first listing query
func indexResumesUpdatedAt(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS resumes_updated_at_idx
		ON resumes (updated_at DESC);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the index may already exist
		slog.Warn("Error creating updated_at index (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured updated_at index")
	return nil
}
