package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"masterboxer.com/sns-api/config"
)

// Dialect is the database/sql driver name the pool was opened with.
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "postgres"
	PGX      Dialect = "pgx"
)

func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(driver) {
	case SQLite, Postgres, PGX:
		return Dialect(driver), nil
	case "sqlite":
		return SQLite, nil
	}
	return "", fmt.Errorf("unsupported DB_DRIVER %q", driver)
}

// ForUpdate is the row-lock suffix for SELECT statements. SQLite has no row
// locks; its pool is pinned to a single connection instead.
func (d Dialect) ForUpdate() string {
	if d == SQLite {
		return ""
	}
	return " FOR UPDATE"
}

// Open opens a pool for the given driver without touching the network.
func Open(dialect Dialect, dsn string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, err
	}

	if dialect == SQLite {
		// One connection: writers never contend and :memory: databases survive.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}

	return db, nil
}

func ConnectDB(cfg config.Config) (*sql.DB, Dialect, error) {
	dialect, err := ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, "", err
	}

	db, err := Open(dialect, cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dialect, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", dialect, err)
	}

	log.WithField("driver", dialect).Info("Connected to database")
	return db, dialect, nil
}

// Ping reports whether the database answers within timeout.
func Ping(db *sql.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return db.PingContext(ctx)
}
