package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"jobcast/db/migrations"
)

// ErrDirtySchema is returned when a previous migration failed half way and
// the schema needs manual repair.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate moves the schema at addr to version target, up or down. A zero
// target means migrations.Version. It returns the version the schema was
// at before the call.
func Migrate(addr string, target uint) (uint, error) {
	if target == 0 {
		target = migrations.Version
	}
	if target > migrations.Version {
		return 0, fmt.Errorf("target version %d is newer than the embedded schema (%d)", target, migrations.Version)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return from, fmt.Errorf("version %d: %w", from, ErrDirtySchema)
	}

	if err = mg.Migrate(target); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migrate %d -> %d: %w", from, target, err)
	}
	return from, nil
}
