package postgres

//nolint:revive
import (
	"context"
	"database/sql"
	"net"
	"net/url"
	"paradise/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	postgresMaxIdleConnection = 4
	postgresMaxOpenConnection = 8
	postgresConnMaxLifetime   = 30 * time.Minute

	paramSSLMode         = "sslmode"
	paramMigrationsTable = "x-migrations-table"
)

// DB is the part of *sqlx.DB the key-value store runs on.
type DB interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Endpoint locates the primary database holding kv_entries.
type Endpoint struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// PrimaryEndpoint reads the primary database from config, with the
// configured prefix applied to the database name.
func PrimaryEndpoint(cfg *config.Config) Endpoint {
	primary := cfg.DB.Postgres.Primary

	return Endpoint{
		Host:     primary.Host,
		Port:     primary.Port,
		Username: primary.Username,
		Password: primary.Password,
		Name:     cfg.DB.Postgres.Prefix + primary.Name,
		SSLMode:  primary.SSLMode,
	}
}

// URL renders the endpoint as a postgres:// URL. Credentials are escaped.
func (e Endpoint) URL(extra url.Values) string {
	query := url.Values{}
	if e.SSLMode != "" {
		query.Set(paramSSLMode, e.SSLMode)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Name,
		RawQuery: query.Encode(),
	}

	if e.Username != "" {
		dsn.User = url.UserPassword(e.Username, e.Password)
	}

	return dsn.String()
}

// MigrationURL is the URL golang-migrate runs against, tracking versions in
// the configured migrations table.
func MigrationURL(cfg *config.Config) string {
	return PrimaryEndpoint(cfg).URL(url.Values{
		paramMigrationsTable: {cfg.DB.Postgres.MigrationTable},
	})
}

// New opens the primary pool. Reads and writes share it so a rewrite of the
// booking list always starts from the latest committed value. The process
// exits when the database stays unreachable after the configured retries.
func New(cfg *config.Config) *sqlx.DB {
	endpoint := PrimaryEndpoint(cfg)

	db := connect(endpoint, cfg.DB.Postgres.MaxRetry, time.Duration(cfg.DB.Postgres.RetryWaitTime)*time.Second)
	if db == nil {
		log.Fatal().Str("host", endpoint.Host).Str("dbName", endpoint.Name).Msg("Failed to connect to database")
	}

	return db
}

func connect(endpoint Endpoint, maxRetry int, wait time.Duration) *sqlx.DB {
	dsn := endpoint.URL(nil)

	for attempt := 1; attempt <= max(1, maxRetry); attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			log.Info().
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.Name).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("host", endpoint.Host).
			Str("dbName", endpoint.Name).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	return nil
}
