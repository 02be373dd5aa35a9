package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/timekeeper/internal/database"
)

// Store is the SQL-backed Timekeeper.  Every multi-statement operation
// runs inside one transaction so no caller observes a never without its
// propagated RSVPs, or a new option without its synthesized refusals.
type Store struct {
	db      *sql.DB
	dialect database.Dialect
	log     *zap.Logger
	now     func() time.Time
}

var _ Timekeeper = (*Store)(nil)

// New binds a Store to a database handle produced by database.Open.
// A nil logger disables logging.
func New(db *database.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		db:      db.SQL,
		dialect: db.Dialect,
		log:     logger.Named("store"),
		now:     time.Now,
	}
}

// stamp is the epoch-millisecond value written to rsvps.timestamp.
func (s *Store) stamp() int64 { return s.now().UnixMilli() }

// inTx runs fn inside a transaction, committing when fn succeeds and
// rolling back otherwise.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
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
	err = fn(tx)
	return err
}

// queryIDs collects a single int64 column.
func queryIDs(ctx context.Context, q interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
}, query string, args ...any) ([]int64, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// mustExist returns ErrNotFound unless table holds a row with id.  table
// is always a literal from this package.
func mustExist(ctx context.Context, tx *sql.Tx, table string, id int64) error {
	var one int
	err := tx.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}
	return err
}
