package repository

import (
	"context"
	"database/sql"
	"errors"
)

// GetValue reads a setting.  The boolean is false when the key is unset.
func (s *Store) GetValue(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM key_values WHERE name = ?", key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// SetValue writes a setting, replacing any previous value.
func (s *Store) SetValue(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, "REPLACE INTO key_values (name, value) VALUES (?, ?)", key, value)
	return err
}
