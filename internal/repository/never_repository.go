package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/iliyamo/timekeeper/internal/model"
	"github.com/iliyamo/timekeeper/internal/validate"
)

// Never records that a participant can not attend anything on a date.
// The never itself is inserted at most once; every existing option on
// that date, across all events, gets its RSVP for the participant
// replaced with a refusal inside the same transaction.
func (s *Store) Never(ctx context.Context, participantID int64, yyyymmdd string) error {
	if err := validate.ID("participantId", participantID); err != nil {
		return err
	}
	date, err := validate.NormalizeDate(yyyymmdd)
	if err != nil {
		return err
	}
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := mustExist(ctx, tx, "participants", participantID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			s.dialect.InsertIgnore+" INTO nevers (participant, yyyymmdd) VALUES (?, ?)",
			participantID, date); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`REPLACE INTO rsvps (event, participant, date_time, attend, timestamp)
			 SELECT event, ?, id, ?, ? FROM date_times WHERE yyyymmdd = ?`,
			participantID, model.AttendNo, s.stamp(), date)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		s.log.Debug("never recorded",
			zap.Int64("participant", participantID), zap.String("date", date), zap.Int64("rows", n))
		return nil
	})
}

// GetNevers lists a participant's nevers in date order.  A non-empty
// since keeps only dates strictly after it.
func (s *Store) GetNevers(ctx context.Context, participantID int64, since string) ([]string, error) {
	query := "SELECT yyyymmdd FROM nevers WHERE participant = ?"
	args := []any{participantID}
	if since != "" {
		date, err := validate.NormalizeDate(since)
		if err != nil {
			return nil, err
		}
		query += " AND yyyymmdd > ?"
		args = append(args, date)
	}
	query += " ORDER BY yyyymmdd"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
