package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/iliyamo/timekeeper/internal/model"
	"github.com/iliyamo/timekeeper/internal/validate"
)

// RSVP records a participant's answer for one option.  A previous answer
// for the same (event, participant, date/time) is replaced; the id of the
// surviving row is returned.
func (s *Store) RSVP(ctx context.Context, eventID, participantID, dateTimeID int64, attend int) (int64, error) {
	if err := validate.ID("eventId", eventID); err != nil {
		return 0, err
	}
	if err := validate.ID("participantId", participantID); err != nil {
		return 0, err
	}
	if err := validate.ID("dateTimeId", dateTimeID); err != nil {
		return 0, err
	}
	if err := validate.Attend(attend); err != nil {
		return 0, err
	}

	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := mustExist(ctx, tx, "participants", participantID); err != nil {
			return err
		}
		if err := checkDateTimeOwner(ctx, tx, eventID, dateTimeID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`REPLACE INTO rsvps (event, participant, date_time, attend, timestamp)
			 VALUES (?, ?, ?, ?, ?)`,
			eventID, participantID, dateTimeID, attend, s.stamp())
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetRSVPs maps each option the participant answered to the answer.
// Options without an answer are absent.
func (s *Store) GetRSVPs(ctx context.Context, eventID, participantID int64) (map[int64]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT date_time, attend FROM rsvps WHERE event = ? AND participant = ?",
		eventID, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]int{}
	for rows.Next() {
		var dt int64
		var attend int
		if err := rows.Scan(&dt, &attend); err != nil {
			return nil, err
		}
		out[dt] = attend
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SummarizeRSVPs counts answers per option.  With a viewer this is NOT
// read-only: the viewer first receives an unknown (0) answer on every
// option of the event they have not answered yet, and those defaults are
// included in the counts.
func (s *Store) SummarizeRSVPs(ctx context.Context, eventID, viewerID int64) (model.Summary, error) {
	var out model.Summary
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if viewerID != NoViewer {
			if err := mustExist(ctx, tx, "participants", viewerID); err != nil {
				return err
			}
			res, err := tx.ExecContext(ctx,
				s.dialect.InsertIgnore+` INTO rsvps (event, participant, date_time, attend, timestamp)
				 SELECT ?, ?, id, ?, ? FROM date_times WHERE event = ?`,
				eventID, viewerID, model.AttendUnknown, s.stamp(), eventID)
			if err != nil {
				return err
			}
			if n, _ := res.RowsAffected(); n > 0 {
				s.log.Debug("default answers materialized",
					zap.Int64("event", eventID), zap.Int64("viewer", viewerID), zap.Int64("rows", n))
			}
		}
		var err error
		out, err = histogram(ctx, tx, eventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func histogram(ctx context.Context, tx *sql.Tx, eventID int64) (model.Summary, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT date_time, attend, COUNT(*) FROM rsvps WHERE event = ? GROUP BY date_time, attend",
		eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := model.Summary{}
	for rows.Next() {
		var (
			dt     int64
			attend int
			n      int
		)
		if err := rows.Scan(&dt, &attend, &n); err != nil {
			return nil, err
		}
		h, ok := out[dt]
		if !ok {
			h = model.Histogram{}
			out[dt] = h
		}
		h[attend] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CollectRSVPs returns every participant's answer per option, but only to
// organizers.  Anyone else, including unknown viewers, receives an empty
// map and no error.
func (s *Store) CollectRSVPs(ctx context.Context, eventID, viewerID int64) (model.Detail, error) {
	var organizer bool
	err := s.db.QueryRowContext(ctx, "SELECT organizer FROM participants WHERE id = ?", viewerID).Scan(&organizer)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load viewer: %w", err)
	}
	if !organizer {
		s.log.Warn("rsvp detail requested by non-organizer",
			zap.Int64("event", eventID), zap.Int64("viewer", viewerID))
		return model.Detail{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT date_time, participant, attend FROM rsvps WHERE event = ?", eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := model.Detail{}
	for rows.Next() {
		var (
			dt, participant int64
			attend          int
		)
		if err := rows.Scan(&dt, &participant, &attend); err != nil {
			return nil, err
		}
		m, ok := out[dt]
		if !ok {
			m = map[int64]int{}
			out[dt] = m
		}
		m[participant] = attend
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
