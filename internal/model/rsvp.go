package model

// Attendance answers stored in rsvps.attend.  At most one answer exists
// per (event, participant, date/time); a later write replaces the earlier
// one.
const (
    AttendNo      = -1
    AttendUnknown = 0
    AttendYes     = 1
)

// Histogram counts answers by attend value.  Only values that occur are
// present.
type Histogram map[int]int

// Summary maps a date/time option id to its answer histogram.
type Summary map[int64]Histogram

// Detail maps a date/time option id to each participant's answer.
type Detail map[int64]map[int64]int
