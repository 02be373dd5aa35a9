package validate

import (
	"errors"
	"testing"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"30m", true},
		{"0m", true},
		{"1 sec", false},
		{"90s", false},
		{"90 m", false},
		{"m", false},
		{"", false},
	}
	for _, tt := range tests {
		err := Duration(tt.in)
		if (err == nil) != tt.valid {
			t.Errorf("Duration(%q) error = %v, want valid=%v", tt.in, err, tt.valid)
		}
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"12:00", true},
		{"1:59", true},
		{"23:59", true},
		{"0:00", true},
		{"11:00 am", false},
		{"noon", false},
		{"24:00", false},
		{"12:60", false},
		{"123:00", false},
	}
	for _, tt := range tests {
		err := Time(tt.in)
		if (err == nil) != tt.valid {
			t.Errorf("Time(%q) error = %v, want valid=%v", tt.in, err, tt.valid)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2018-12-01", "2018-12-01", true},
		{"2018/2/1", "2018-02-01", true},
		{"2018-2/1", "2018-02-01", true},
		{"20181201", "2018-12-01", true},
		{"2018-2-31", "2018-02-31", true},
		{"201-12-01", "", false},
		{"2018-13-01", "", false},
		{"2018-0-01", "", false},
		{"2018-12-32", "", false},
		{"2018.12.01", "", false},
		{"1201", "", false},
	}
	for _, tt := range tests {
		got, err := NormalizeDate(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("NormalizeDate(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestErrorIdentifiesField(t *testing.T) {
	_, err := NormalizeDate("201-12-01")
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("NormalizeDate() error = %T, want *Error", err)
	}
	if verr.Field != "date" || verr.Value != "201-12-01" {
		t.Errorf("got field=%q value=%q", verr.Field, verr.Value)
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("errors.Is(err, ErrInvalid) = false")
	}
}

func TestIntegerAndID(t *testing.T) {
	if n, err := Integer("eventId", "42"); err != nil || n != 42 {
		t.Errorf("Integer(42) = %d, %v", n, err)
	}
	for _, raw := range []string{"4.2", "abc", "1; DROP TABLE events", ""} {
		if _, err := Integer("eventId", raw); !errors.Is(err, ErrInvalid) {
			t.Errorf("Integer(%q) error = %v, want ErrInvalid", raw, err)
		}
	}
	if err := ID("eventId", 0); err == nil {
		t.Errorf("ID(0) error = nil")
	}
	if err := ID("eventId", 1); err != nil {
		t.Errorf("ID(1) error = %v", err)
	}
}

func TestAttend(t *testing.T) {
	for _, v := range []int{-1, 0, 1} {
		if err := Attend(v); err != nil {
			t.Errorf("Attend(%d) error = %v", v, err)
		}
	}
	for _, v := range []int{-2, 2} {
		if err := Attend(v); err == nil {
			t.Errorf("Attend(%d) error = nil", v)
		}
	}
}
