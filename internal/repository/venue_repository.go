package repository

import (
	"context"
	"fmt"

	"github.com/iliyamo/timekeeper/internal/model"
)

// CreateVenue inserts a venue.  When the name is already taken the id of
// the existing venue is returned with Existed set; any other failure is
// propagated.
func (s *Store) CreateVenue(ctx context.Context, name, address string) (VenueResult, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO venues (name, address) VALUES (?, ?)", name, address)
	if err == nil {
		id, err := res.LastInsertId()
		if err != nil {
			return VenueResult{}, err
		}
		return VenueResult{ID: id}, nil
	}
	if !s.dialect.IsUniqueViolation(err) {
		return VenueResult{}, fmt.Errorf("create venue: %w", err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, "SELECT id FROM venues WHERE name = ?", name).Scan(&id); err != nil {
		return VenueResult{}, fmt.Errorf("load existing venue: %w", err)
	}
	return VenueResult{ID: id, Existed: true}, nil
}

// GetVenues returns every venue matching f, ordered by id.
func (s *Store) GetVenues(ctx context.Context, f Filter) ([]model.Venue, error) {
	cond, args, err := f.where(s.dialect, venueColumns)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, address FROM venues WHERE "+cond+" ORDER BY id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Venue{}
	for rows.Next() {
		var v model.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Address); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
