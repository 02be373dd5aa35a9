package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// DB bundles the shared connection with the dialect it speaks.
type DB struct {
	SQL     *sql.DB
	Dialect Dialect
}

// Open connects to the configured engine, verifies the connection and
// runs Setup so the returned handle is ready for the store.  Any schema
// failure closes the connection and is returned to the caller.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	d, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}
	if d.Name == SQLite.Name {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, err
	}

	if d.Name == SQLite.Name {
		// One connection: writes are serialized by the engine and an
		// in-memory database lives exactly as long as this connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	out := &DB{SQL: db, Dialect: d}
	if err := Setup(ctx, out); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema setup: %w", err)
	}
	return out, nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	if db == nil || db.SQL == nil {
		return nil
	}
	return db.SQL.Close()
}

// sqliteDSN turns on foreign key enforcement for every connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}
