package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/timekeeper/internal/model"
	"github.com/iliyamo/timekeeper/internal/validate"
)

// CreateEvent inserts an open event at an existing venue.  A taken name
// yields ErrConflict and an unknown venue ErrNotFound.
func (s *Store) CreateEvent(ctx context.Context, name string, venueID int64, description string) (int64, error) {
	if err := validate.ID("venueId", venueID); err != nil {
		return 0, err
	}
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := mustExist(ctx, tx, "venues", venueID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO events (name, description, venue) VALUES (?, ?, ?)",
			name, description, venueID)
		if err != nil {
			if s.dialect.IsUniqueViolation(err) {
				return fmt.Errorf("event %q: %w", name, ErrConflict)
			}
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

// GetEvent loads an event with its options attached.  When viewerID is
// set each option carries that viewer's own answer, left nil where the
// viewer never responded.  A missing event yields nil without error.
func (s *Store) GetEvent(ctx context.Context, eventID, viewerID int64) (*model.Event, error) {
	var (
		ev       model.Event
		dateTime sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description, venue, date_time FROM events WHERE id = ?", eventID).
		Scan(&ev.ID, &ev.Name, &ev.Description, &ev.Venue, &dateTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	options, err := s.eventDateTimes(ctx, eventID, viewerID)
	if err != nil {
		return nil, err
	}
	ev.DateTimes = options

	if dateTime.Valid {
		for i := range options {
			if options[i].ID == dateTime.Int64 {
				chosen := options[i]
				ev.DateTime = &chosen
				break
			}
		}
	}
	return &ev, nil
}

func (s *Store) eventDateTimes(ctx context.Context, eventID, viewerID int64) ([]model.DateTimeOption, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if viewerID == NoViewer {
		rows, err = s.db.QueryContext(ctx,
			`SELECT d.id, d.event, d.yyyymmdd, d.hhmm, d.duration, NULL
			 FROM date_times d WHERE d.event = ? ORDER BY d.id`, eventID)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT d.id, d.event, d.yyyymmdd, d.hhmm, d.duration, r.attend
			 FROM date_times d
			 LEFT JOIN rsvps r ON r.date_time = d.id AND r.event = d.event AND r.participant = ?
			 WHERE d.event = ? ORDER BY d.id`, viewerID, eventID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.DateTimeOption{}
	for rows.Next() {
		var (
			o      model.DateTimeOption
			attend sql.NullInt64
		)
		if err := rows.Scan(&o.ID, &o.Event, &o.YYYYMMDD, &o.HHMM, &o.Duration, &attend); err != nil {
			return nil, err
		}
		if attend.Valid {
			a := int(attend.Int64)
			o.Attend = &a
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEvents returns the ids of events matching f, ordered by id.
func (s *Store) GetEvents(ctx context.Context, f Filter) ([]int64, error) {
	cond, args, err := f.where(s.dialect, eventColumns)
	if err != nil {
		return nil, err
	}
	return queryIDs(ctx, s.db, "SELECT id FROM events WHERE "+cond+" ORDER BY id", args...)
}

// CloseEvent fixes the event's authoritative option.  NoDateTime clears
// it again.  The option must belong to the event.
func (s *Store) CloseEvent(ctx context.Context, eventID, dateTimeID int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := mustExist(ctx, tx, "events", eventID); err != nil {
			return err
		}
		if dateTimeID == NoDateTime {
			_, err := tx.ExecContext(ctx, "UPDATE events SET date_time = NULL WHERE id = ?", eventID)
			return err
		}
		if err := checkDateTimeOwner(ctx, tx, eventID, dateTimeID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "UPDATE events SET date_time = ? WHERE id = ?", dateTimeID, eventID)
		return err
	})
}

// checkDateTimeOwner verifies that dateTimeID exists and belongs to eventID.
func checkDateTimeOwner(ctx context.Context, tx *sql.Tx, eventID, dateTimeID int64) error {
	var owner int64
	if err := tx.QueryRowContext(ctx, "SELECT event FROM date_times WHERE id = ?", dateTimeID).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("date/time %d: %w", dateTimeID, ErrNotFound)
		}
		return err
	}
	if owner != eventID {
		return fmt.Errorf("date/time %d, event %d: %w", dateTimeID, eventID, ErrDateTimeMismatch)
	}
	return nil
}
