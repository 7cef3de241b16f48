package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"paroisse/config"
	"paroisse/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

type action struct {
	run  func(mig *migrate.Migrate) error
	done string
}

var actions = map[string]action{
	ActionUp:     {run: (*migrate.Migrate).Up, done: "Database migrations completed successfully"},
	ActionDown:   {run: func(mig *migrate.Migrate) error { return mig.Steps(-1) }, done: "Database migration rolled back successfully"},
	ActionStepUp: {run: func(mig *migrate.Migrate) error { return mig.Steps(1) }, done: "Database migration applied successfully"},
	ActionDrop:   {run: (*migrate.Migrate).Down, done: "Database migrations rolled back successfully"},
}

func connectionString(config *config.Config) string {
	pg := config.DB.Postgres

	return postgres.DSN(pg, pg.Write, url.Values{"x-migrations-table": {pg.MigrationTable}})
}

// Runner applies action (up, down, step-up or drop) to the write database.
func Runner(config *config.Config, name string) error {
	act, ok := actions[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}

	mig, err := migrate.New(migrationsSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := act.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", name, err)
	}

	log.Info().Str("action", name).Msg(act.done)

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
