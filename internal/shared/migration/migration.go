package migration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// DatabaseURL rewrites a postgres:// URL for the pgx/v5 migrate driver.
func DatabaseURL(postgresURL string) string {
	if rest, ok := strings.CutPrefix(postgresURL, "postgresql://"); ok {
		return "pgx5://" + rest
	}
	if rest, ok := strings.CutPrefix(postgresURL, "postgres://"); ok {
		return "pgx5://" + rest
	}
	return postgresURL
}

type Runner struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

func NewRunner(sourceURL, databaseURL string, logger ...*zap.Logger) (*Runner, error) {
	l := zap.L().Named("migration")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("migration")
	}

	m, err := migrate.New(sourceURL, DatabaseURL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("create migration instance: %w", err)
	}
	return &Runner{m: m, logger: l}, nil
}

func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}

// Up applies every pending migration. A dirty version is forced clean first.
func (r *Runner) Up() error {
	version, dirty, err := r.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		r.logger.Warn("database dirty, forcing version", zap.Uint("version", version))
		if err := r.m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
	}

	if err := r.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("schema up to date", zap.Uint("version", version))
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, _, _ = r.m.Version()
	r.logger.Info("migrations applied", zap.Uint("version", version))
	return nil
}

// Down rolls back the given number of steps.
func (r *Runner) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}
	if err := r.m.Steps(-steps); err != nil {
		return fmt.Errorf("roll back %d steps: %w", steps, err)
	}
	version, _, _ := r.m.Version()
	r.logger.Info("migrations rolled back", zap.Int("steps", steps), zap.Uint("version", version))
	return nil
}

func (r *Runner) Version() (uint, bool, error) {
	return r.m.Version()
}

func (r *Runner) Force(version int) error {
	return r.m.Force(version)
}
