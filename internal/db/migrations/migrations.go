package migrations

import (
	"auction-market/internal/db"
	"auction-market/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies the SQL migrations under sql/ to the database the
// environment points at. Already-applied migrations are a no-op.
func RunMigrations() error {
	dbURL := db.BuildPostgresDSN()
	utils.Info("running database migrations", map[string]any{"db_url": dbURL})

	m, err := migrate.New(
		"file://internal/db/migrations/sql",
		dbURL,
	)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
