package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate brings the schema (exercise_type, lift_log, lift_log_set,
// personal_record, gymstats_event) up to the latest version. It returns the
// version the database ended on.
func Migrate(params NewDBPoolParams) (_ uint, err error) {
	sourceDriver, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return 0, fmt.Errorf("load embedded migrations: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", sourceDriver, params.ConnString("pgx5"))
	if err != nil {
		return 0, fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if err == nil {
			err = multierr.Combine(srcErr, dbErr)
		}
	}()

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	log.Debugf("db schema at version %d", version)
	return version, nil
}
