package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/iliyamo/timekeeper/internal/model"
	"github.com/iliyamo/timekeeper/internal/validate"
)

// CreateDateTime adds a candidate option to an event.  In the same
// transaction every participant holding a never on that date receives a
// refusal for the new option.
func (s *Store) CreateDateTime(ctx context.Context, eventID int64, yyyymmdd, hhmm, duration string) (int64, error) {
	if err := validate.ID("eventId", eventID); err != nil {
		return 0, err
	}
	date, err := validate.NormalizeDate(yyyymmdd)
	if err != nil {
		return 0, err
	}
	if err := validate.Time(hhmm); err != nil {
		return 0, err
	}
	if err := validate.Duration(duration); err != nil {
		return 0, err
	}

	var id int64
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		if err := mustExist(ctx, tx, "events", eventID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO date_times (event, yyyymmdd, hhmm, duration) VALUES (?, ?, ?, ?)",
			eventID, date, hhmm, duration)
		if err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx,
			`REPLACE INTO rsvps (event, participant, date_time, attend, timestamp)
			 SELECT ?, participant, ?, ?, ? FROM nevers WHERE yyyymmdd = ?`,
			eventID, id, model.AttendNo, s.stamp(), date)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			s.log.Debug("nevers applied to new option",
				zap.Int64("date_time", id), zap.String("date", date), zap.Int64("rows", n))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
