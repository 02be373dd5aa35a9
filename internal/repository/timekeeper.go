package repository

import (
	"context"

	"github.com/iliyamo/timekeeper/internal/model"
)

// NoViewer and NoDateTime stand for an omitted optional id.  Row ids are
// always positive so zero never collides with a real record.
const (
	NoViewer   int64 = 0
	NoDateTime int64 = 0
)

// VenueResult tells a freshly created venue apart from one that already
// existed under the same name.  Both outcomes are successes.
type VenueResult struct {
	ID      int64
	Existed bool
}

// Timekeeper is the capability contract every storage backend satisfies.
// Callers (HTTP handlers, CLI tools) depend on this interface so backends
// can be swapped or stubbed.
type Timekeeper interface {
	CreateVenue(ctx context.Context, name, address string) (VenueResult, error)
	GetVenues(ctx context.Context, f Filter) ([]model.Venue, error)

	CreateEvent(ctx context.Context, name string, venueID int64, description string) (int64, error)
	GetEvent(ctx context.Context, eventID, viewerID int64) (*model.Event, error)
	GetEvents(ctx context.Context, f Filter) ([]int64, error)
	CloseEvent(ctx context.Context, eventID, dateTimeID int64) error
	CreateDateTime(ctx context.Context, eventID int64, yyyymmdd, hhmm, duration string) (int64, error)

	CreateParticipant(ctx context.Context, name string, opts model.ParticipantOptions) (int64, error)
	GetUserID(ctx context.Context, name string) (int64, bool, error)
	GetUserInfo(ctx context.Context, userID int64) (*model.Participant, error)
	UpdateUserSection(ctx context.Context, userID int64, proposed string) (string, error)
	CreateSection(ctx context.Context, name string) error
	SetPassword(ctx context.Context, userID int64, hash string) error
	GetCredentials(ctx context.Context, name string) (*model.Credentials, error)

	RSVP(ctx context.Context, eventID, participantID, dateTimeID int64, attend int) (int64, error)
	GetRSVPs(ctx context.Context, eventID, participantID int64) (map[int64]int, error)
	SummarizeRSVPs(ctx context.Context, eventID, viewerID int64) (model.Summary, error)
	CollectRSVPs(ctx context.Context, eventID, viewerID int64) (model.Detail, error)

	Never(ctx context.Context, participantID int64, yyyymmdd string) error
	GetNevers(ctx context.Context, participantID int64, since string) ([]string, error)

	GetValue(ctx context.Context, key string) (string, bool, error)
	SetValue(ctx context.Context, key, value string) error
}

// UnimplementedTimekeeper fails every operation with ErrNotImplemented.
// Embed it in test doubles or partial backends and override only what
// is needed.
type UnimplementedTimekeeper struct{}

var _ Timekeeper = UnimplementedTimekeeper{}

func (UnimplementedTimekeeper) CreateVenue(context.Context, string, string) (VenueResult, error) {
	return VenueResult{}, ErrNotImplemented
}
func (UnimplementedTimekeeper) GetVenues(context.Context, Filter) ([]model.Venue, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) CreateEvent(context.Context, string, int64, string) (int64, error) {
	return 0, ErrNotImplemented
}
func (UnimplementedTimekeeper) GetEvent(context.Context, int64, int64) (*model.Event, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) GetEvents(context.Context, Filter) ([]int64, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) CloseEvent(context.Context, int64, int64) error {
	return ErrNotImplemented
}
func (UnimplementedTimekeeper) CreateDateTime(context.Context, int64, string, string, string) (int64, error) {
	return 0, ErrNotImplemented
}
func (UnimplementedTimekeeper) CreateParticipant(context.Context, string, model.ParticipantOptions) (int64, error) {
	return 0, ErrNotImplemented
}
func (UnimplementedTimekeeper) GetUserID(context.Context, string) (int64, bool, error) {
	return 0, false, ErrNotImplemented
}
func (UnimplementedTimekeeper) GetUserInfo(context.Context, int64) (*model.Participant, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) UpdateUserSection(context.Context, int64, string) (string, error) {
	return "", ErrNotImplemented
}
func (UnimplementedTimekeeper) CreateSection(context.Context, string) error {
	return ErrNotImplemented
}
func (UnimplementedTimekeeper) SetPassword(context.Context, int64, string) error {
	return ErrNotImplemented
}
func (UnimplementedTimekeeper) GetCredentials(context.Context, string) (*model.Credentials, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) RSVP(context.Context, int64, int64, int64, int) (int64, error) {
	return 0, ErrNotImplemented
}
func (UnimplementedTimekeeper) GetRSVPs(context.Context, int64, int64) (map[int64]int, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) SummarizeRSVPs(context.Context, int64, int64) (model.Summary, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) CollectRSVPs(context.Context, int64, int64) (model.Detail, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) Never(context.Context, int64, string) error {
	return ErrNotImplemented
}
func (UnimplementedTimekeeper) GetNevers(context.Context, int64, string) ([]string, error) {
	return nil, ErrNotImplemented
}
func (UnimplementedTimekeeper) GetValue(context.Context, string) (string, bool, error) {
	return "", false, ErrNotImplemented
}
func (UnimplementedTimekeeper) SetValue(context.Context, string, string) error {
	return ErrNotImplemented
}
