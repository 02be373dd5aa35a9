package model

// Event is a gathering with several candidate date/time options.  While
// DateTime is nil the event is open; once closed it points at the single
// authoritative option.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – unique event name.
//  Description – markdown text.
//  Venue       – venues.id the event takes place at.
//  DateTime    – resolved authoritative option, nil while open.
//  DateTimes   – every candidate option ordered by id.
type Event struct {
    ID          int64            `json:"id"`
    Name        string           `json:"name"`
    Description string           `json:"description"`
    Venue       int64            `json:"venue"`
    DateTime    *DateTimeOption  `json:"dateTime,omitempty"`
    DateTimes   []DateTimeOption `json:"dateTimes"`
}

// Closed reports whether an authoritative option has been chosen.
func (e *Event) Closed() bool { return e.DateTime != nil }

// DateTimeOption is one candidate slot of an event.  Attend is only
// populated when the event was loaded on behalf of a viewer who has
// answered this option; a missing answer stays nil rather than 0.
type DateTimeOption struct {
    ID       int64  `json:"id"`       // date_times.id
    Event    int64  `json:"event"`    // date_times.event
    YYYYMMDD string `json:"yyyymmdd"` // date_times.yyyymmdd (canonical YYYY-MM-DD)
    HHMM     string `json:"hhmm"`     // date_times.hhmm
    Duration string `json:"duration"` // date_times.duration, e.g. "45m"
    Attend   *int   `json:"attend,omitempty"`
}
