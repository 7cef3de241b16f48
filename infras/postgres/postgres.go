package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"paroisse/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools, retrying each as configured. It exits
// the process when a pool stays unreachable.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", pg, DSN(pg, pg.Read, nil)),
		Write: connect("write", pg, DSN(pg, pg.Write, nil)),
	}
}

// DSN renders conn as a postgres URL. The database name carries the
// configured prefix; extra is merged into the query string.
func DSN(pg config.Postgres, conn config.PostgresConn, extra url.Values) string {
	query := url.Values{}
	if conn.SSLMode != "" {
		query.Set("sslmode", conn.SSLMode)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conn.Username, conn.Password),
		Host:     net.JoinHostPort(conn.Host, conn.Port),
		Path:     "/" + pg.Prefix + conn.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(name string, pg config.Postgres, dsn string) *sqlx.DB {
	logger := log.With().Str("name", name).Logger()
	wait := time.Duration(pg.RetryWaitTime) * time.Second

	for attempt := 1; attempt <= max(pg.MaxRetry, 1); attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			logger.Info().Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(wait)
	}

	logger.Fatal().Msg("Could not connect to database")

	return nil
}

// WithTx runs fn inside a single write transaction. The transaction is committed
// only when fn returns nil; any error or panic rolls every statement back.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed closing database connection")
		}
	}
}
