package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/goran-ethernal/BlockLake/internal/db"
	"github.com/goran-ethernal/BlockLake/internal/logger"
)

//go:embed 001_progress.sql
var mig001 string

//go:embed 002_block_hashes.sql
var mig002 string

// All returns the migrations of the progress database in order.
func All() []db.Migration {
	return []db.Migration{
		{
			ID:  "001_progress.sql",
			SQL: mig001,
		},
		{
			ID:  "002_block_hashes.sql",
			SQL: mig002,
		},
	}
}

// RunMigrations brings the progress database schema up to date.
func RunMigrations(log *logger.Logger, sqlDB *sql.DB) error {
	return db.RunMigrationsDB(log, sqlDB, All())
}
