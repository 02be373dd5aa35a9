package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/timekeeper/internal/model"
	"github.com/iliyamo/timekeeper/internal/validate"
)

// CreateParticipant inserts a participant.  A taken name yields ErrConflict.
func (s *Store) CreateParticipant(ctx context.Context, name string, opts model.ParticipantOptions) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO participants (name, section, organizer, email) VALUES (?, ?, ?, ?)",
		name, opts.Section, opts.Organizer, opts.Email)
	if err != nil {
		if s.dialect.IsUniqueViolation(err) {
			return 0, fmt.Errorf("participant %q: %w", name, ErrConflict)
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetUserID resolves a participant name.  The boolean is false when no
// participant has that name.
func (s *Store) GetUserID(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM participants WHERE name = ?", name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

// GetUserInfo loads a participant, or nil when the id is unknown.
func (s *Store) GetUserInfo(ctx context.Context, userID int64) (*model.Participant, error) {
	var p model.Participant
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, section, organizer, email FROM participants WHERE id = ?", userID).
		Scan(&p.ID, &p.Name, &p.Section, &p.Organizer, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateUserSection moves a participant into the proposed section if it
// names an entry of the sections vocabulary (compared case-insensitively)
// and returns the section now in effect.  An unknown proposal leaves the
// participant unchanged and returns their current section.
func (s *Store) UpdateUserSection(ctx context.Context, userID int64, proposed string) (string, error) {
	if err := validate.ID("userId", userID); err != nil {
		return "", err
	}
	var applied string
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, "SELECT section FROM participants WHERE id = ?", userID).Scan(&applied); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("participant %d: %w", userID, ErrNotFound)
			}
			return err
		}
		var section string
		err := tx.QueryRowContext(ctx, "SELECT name FROM sections WHERE name = ?", normalizeSection(proposed)).Scan(&section)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "UPDATE participants SET section = ? WHERE id = ?", section, userID); err != nil {
			return err
		}
		applied = section
		return nil
	})
	if err != nil {
		return "", err
	}
	return applied, nil
}

// CreateSection adds a name to the sections vocabulary.  Names are stored
// lower-cased and adding an existing one is a no-op.
func (s *Store) CreateSection(ctx context.Context, name string) error {
	name = normalizeSection(name)
	if name == "" {
		return &validate.Error{Field: "section", Value: name, Reason: "must not be empty"}
	}
	_, err := s.db.ExecContext(ctx, s.dialect.InsertIgnore+" INTO sections (name) VALUES (?)", name)
	return err
}

func normalizeSection(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SetPassword stores a bcrypt hash for the participant.
func (s *Store) SetPassword(ctx context.Context, userID int64, hash string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := mustExist(ctx, tx, "participants", userID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "UPDATE participants SET password_hash = ? WHERE id = ?", hash, userID)
		return err
	})
}

// GetCredentials loads what the session layer needs to verify a login,
// or nil when no participant has that name.
func (s *Store) GetCredentials(ctx context.Context, name string) (*model.Credentials, error) {
	var c model.Credentials
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, password_hash, organizer FROM participants WHERE name = ?", name).
		Scan(&c.ID, &c.Name, &c.PasswordHash, &c.Organizer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
