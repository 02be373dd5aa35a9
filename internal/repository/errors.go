// Package repository contains the Timekeeper store: data access for
// venues, events, date/time options, participants and RSVPs together with
// the reconciliation rules that tie nevers to RSVPs.  The sentinel values
// below let higher layers such as handlers tell failure kinds apart.
package repository

import "errors"

// ErrNotFound is returned when an operation refers to a row that does
// not exist, e.g. creating an event at an unknown venue.  Plain lookups
// report absence with a nil result instead.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a unique name is already taken by an
// event, participant or similar record.  Handlers should translate this
// into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrDateTimeMismatch is returned when a date/time option is used with an
// event it does not belong to.
var ErrDateTimeMismatch = errors.New("date/time option belongs to another event")

// ErrNotImplemented is returned by UnimplementedTimekeeper for every
// operation a backend has not provided.
var ErrNotImplemented = errors.New("not implemented")
