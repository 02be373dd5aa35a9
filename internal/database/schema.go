package database

import (
	"context"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		name    TEXT NOT NULL UNIQUE,
		address TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL UNIQUE,
		section       TEXT NOT NULL DEFAULT '',
		organizer     INTEGER NOT NULL DEFAULT 0,
		email         TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		venue       INTEGER NOT NULL REFERENCES venues(id),
		date_time   INTEGER NULL
	)`,
	`CREATE TABLE IF NOT EXISTS date_times (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		event    INTEGER NOT NULL REFERENCES events(id),
		yyyymmdd TEXT NOT NULL,
		hhmm     TEXT NOT NULL,
		duration TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_date_times_event ON date_times(event)`,
	`CREATE INDEX IF NOT EXISTS idx_date_times_yyyymmdd ON date_times(yyyymmdd)`,
	`CREATE TABLE IF NOT EXISTS rsvps (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		event       INTEGER NOT NULL REFERENCES events(id),
		participant INTEGER NOT NULL REFERENCES participants(id),
		date_time   INTEGER NOT NULL REFERENCES date_times(id),
		attend      INTEGER NOT NULL DEFAULT 0,
		timestamp   INTEGER NOT NULL,
		UNIQUE (event, participant, date_time)
	)`,
	`CREATE TABLE IF NOT EXISTS nevers (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		participant INTEGER NOT NULL REFERENCES participants(id),
		yyyymmdd    TEXT NOT NULL,
		UNIQUE (participant, yyyymmdd)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nevers_yyyymmdd ON nevers(yyyymmdd)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS key_values (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL DEFAULT ''
	)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id      BIGINT AUTO_INCREMENT PRIMARY KEY,
		name    VARCHAR(191) NOT NULL UNIQUE,
		address VARCHAR(512) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS participants (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(191) NOT NULL UNIQUE,
		section       VARCHAR(191) NOT NULL DEFAULT '',
		organizer     TINYINT(1) NOT NULL DEFAULT 0,
		email         VARCHAR(320) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS events (
		id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(191) NOT NULL UNIQUE,
		description TEXT NOT NULL,
		venue       BIGINT NOT NULL,
		date_time   BIGINT NULL,
		FOREIGN KEY (venue) REFERENCES venues(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS date_times (
		id       BIGINT AUTO_INCREMENT PRIMARY KEY,
		event    BIGINT NOT NULL,
		yyyymmdd VARCHAR(10) NOT NULL,
		hhmm     VARCHAR(5) NOT NULL,
		duration VARCHAR(16) NOT NULL,
		INDEX idx_date_times_event (event),
		INDEX idx_date_times_yyyymmdd (yyyymmdd),
		FOREIGN KEY (event) REFERENCES events(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS rsvps (
		id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		event       BIGINT NOT NULL,
		participant BIGINT NOT NULL,
		date_time   BIGINT NOT NULL,
		attend      TINYINT NOT NULL DEFAULT 0,
		timestamp   BIGINT NOT NULL,
		UNIQUE KEY uq_rsvps_triple (event, participant, date_time),
		FOREIGN KEY (event) REFERENCES events(id),
		FOREIGN KEY (participant) REFERENCES participants(id),
		FOREIGN KEY (date_time) REFERENCES date_times(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS nevers (
		id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		participant BIGINT NOT NULL,
		yyyymmdd    VARCHAR(10) NOT NULL,
		UNIQUE KEY uq_nevers_participant_date (participant, yyyymmdd),
		INDEX idx_nevers_yyyymmdd (yyyymmdd),
		FOREIGN KEY (participant) REFERENCES participants(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS sections (
		id   BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(191) NOT NULL UNIQUE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS key_values (
		name  VARCHAR(191) PRIMARY KEY,
		value TEXT NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Setup creates every table and index the store relies on.  It is safe
// to run against an already initialized database.  SQLite applies the
// whole schema atomically; MySQL commits each DDL statement on its own.
func Setup(ctx context.Context, db *DB) (err error) {
	tx, err := db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	for _, stmt := range db.Dialect.schema {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
