package model

// Participant represents a person who answers RSVPs.  Organizers may
// read the per-participant RSVP detail of any event.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – unique login/display name.
//  Section   – name from the sections vocabulary, empty when unassigned.
//  Organizer – grants access to admin-only aggregate views.
//  Email     – address used by the mail collaborator, may be empty.
type Participant struct {
    ID        int64  `json:"id"`        // participants.id
    Name      string `json:"name"`      // participants.name
    Section   string `json:"section"`   // participants.section
    Organizer bool   `json:"organizer"` // participants.organizer
    Email     string `json:"email"`     // participants.email
}

// ParticipantOptions carries the optional attributes accepted when a
// participant is created.  The zero value yields a non-organizer with an
// empty section and email.
type ParticipantOptions struct {
    Section   string
    Organizer bool
    Email     string
}

// Credentials pairs a participant id with its stored bcrypt hash.  An
// empty hash means no password has been issued yet.
type Credentials struct {
    ID           int64
    Name         string
    PasswordHash string
    Organizer    bool
}
