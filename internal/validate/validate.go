// Package validate holds the pure format checks applied to caller input
// before it reaches storage.  Every failure is a *Error naming the field
// and the offending value; callers treat these as their own fault and
// never retry.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalid is matched by every *Error via errors.Is.
var ErrInvalid = errors.New("invalid input")

// Error describes a single rejected value.
type Error struct {
	Field  string
	Value  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *Error) Is(target error) bool { return target == ErrInvalid }

func fail(field, value, reason string) error {
	return &Error{Field: field, Value: value, Reason: reason}
}

var (
	dateRe     = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	compactRe  = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`)
	timeRe     = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	durationRe = regexp.MustCompile(`^\d+m$`)
)

// Integer parses raw as a whole number.
func Integer(field, raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fail(field, raw, "must be an integer")
	}
	return n, nil
}

// ID checks that an identifier is a positive row id.
func ID(field string, id int64) error {
	if id < 1 {
		return fail(field, strconv.FormatInt(id, 10), "must be a positive id")
	}
	return nil
}

// NormalizeDate accepts YYYY-M-D or YYYY/M/D with one or two digit month
// and day, and the compact YYYYMMDD form, and returns it as zero-padded
// YYYY-MM-DD.  Day counts are not checked per month.
func NormalizeDate(raw string) (string, error) {
	m := dateRe.FindStringSubmatch(raw)
	if m == nil {
		m = compactRe.FindStringSubmatch(raw)
	}
	if m == nil {
		return "", fail("date", raw, "expected YYYY-M-D, YYYY/M/D or YYYYMMDD")
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return "", fail("date", raw, "month out of range")
	}
	if day < 1 || day > 31 {
		return "", fail("date", raw, "day out of range")
	}
	return fmt.Sprintf("%s-%02d-%02d", m[1], month, day), nil
}

// Time accepts H:MM or HH:MM on a 24 hour clock.
func Time(raw string) error {
	m := timeRe.FindStringSubmatch(raw)
	if m == nil {
		return fail("time", raw, "expected H:MM or HH:MM")
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return fail("time", raw, "hour out of range")
	}
	if minute > 59 {
		return fail("time", raw, "minute out of range")
	}
	return nil
}

// Duration accepts a whole number of minutes written with an "m" suffix.
func Duration(raw string) error {
	if !durationRe.MatchString(raw) {
		return fail("duration", raw, `expected minutes such as "45m"`)
	}
	return nil
}

// Attend accepts -1, 0 or 1.
func Attend(v int) error {
	if v < -1 || v > 1 {
		return fail("attend", strconv.Itoa(v), "must be -1, 0 or 1")
	}
	return nil
}
