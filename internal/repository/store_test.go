package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/iliyamo/timekeeper/internal/database"
	"github.com/iliyamo/timekeeper/internal/model"
	"github.com/iliyamo/timekeeper/internal/validate"
)

func setupTestStore(t *testing.T) (*Store, *database.DB) {
	t.Helper()
	db, err := database.Open(context.Background(), "sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	s := New(db, nil)
	clock := time.Date(2018, 11, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	return s, db
}

func mustVenue(t *testing.T, s *Store, name, address string) int64 {
	t.Helper()
	res, err := s.CreateVenue(context.Background(), name, address)
	if err != nil {
		t.Fatalf("CreateVenue(%q) error = %v", name, err)
	}
	return res.ID
}

func mustEvent(t *testing.T, s *Store, name string, venue int64) int64 {
	t.Helper()
	id, err := s.CreateEvent(context.Background(), name, venue, "")
	if err != nil {
		t.Fatalf("CreateEvent(%q) error = %v", name, err)
	}
	return id
}

func mustDateTime(t *testing.T, s *Store, event int64, date, hhmm, duration string) int64 {
	t.Helper()
	id, err := s.CreateDateTime(context.Background(), event, date, hhmm, duration)
	if err != nil {
		t.Fatalf("CreateDateTime(%q) error = %v", date, err)
	}
	return id
}

func mustParticipant(t *testing.T, s *Store, name string, opts model.ParticipantOptions) int64 {
	t.Helper()
	id, err := s.CreateParticipant(context.Background(), name, opts)
	if err != nil {
		t.Fatalf("CreateParticipant(%q) error = %v", name, err)
	}
	return id
}

func countRSVPs(t *testing.T, db *database.DB, event int64) int {
	t.Helper()
	var n int
	if err := db.SQL.QueryRow("SELECT COUNT(*) FROM rsvps WHERE event = ?", event).Scan(&n); err != nil {
		t.Fatalf("count rsvps error = %v", err)
	}
	return n
}

func TestCreateVenueIsIdempotentByName(t *testing.T) {
	s, db := setupTestStore(t)
	ctx := context.Background()

	first, err := s.CreateVenue(ctx, "The Shire", "It's fictional")
	if err != nil {
		t.Fatalf("CreateVenue() error = %v", err)
	}
	if first.Existed || first.ID != 1 {
		t.Errorf("first CreateVenue() = %+v, want fresh id 1", first)
	}
	second, err := s.CreateVenue(ctx, "The Shire", "somewhere else")
	if err != nil {
		t.Fatalf("second CreateVenue() error = %v", err)
	}
	if !second.Existed || second.ID != first.ID {
		t.Errorf("second CreateVenue() = %+v, want existing id %d", second, first.ID)
	}
	var n int
	if err := db.SQL.QueryRow("SELECT COUNT(*) FROM venues").Scan(&n); err != nil {
		t.Fatalf("count error = %v", err)
	}
	if n != 1 {
		t.Errorf("venue rows = %d, want 1", n)
	}
}

func TestCreateEvent(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	venue := mustVenue(t, s, "The Shire", "It's fictional")

	id := mustEvent(t, s, "Elevensies", venue)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := s.CreateEvent(ctx, "Elevensies", venue, "")
		if !errors.Is(err, ErrConflict) {
			t.Errorf("CreateEvent() error = %v, want ErrConflict", err)
		}
	})
	t.Run("unknown venue", func(t *testing.T) {
		_, err := s.CreateEvent(ctx, "Second Breakfast", 99, "")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("CreateEvent() error = %v, want ErrNotFound", err)
		}
	})
	t.Run("invalid venue id", func(t *testing.T) {
		_, err := s.CreateEvent(ctx, "Luncheon", 0, "")
		if !errors.Is(err, validate.ErrInvalid) {
			t.Errorf("CreateEvent() error = %v, want ErrInvalid", err)
		}
	})
	t.Run("event starts open", func(t *testing.T) {
		ev, err := s.GetEvent(ctx, id, NoViewer)
		if err != nil {
			t.Fatalf("GetEvent() error = %v", err)
		}
		if ev.Closed() || ev.Name != "Elevensies" || ev.Venue != venue {
			t.Errorf("GetEvent() = %+v", ev)
		}
	})
}

func TestRSVPReplacesPreviousAnswer(t *testing.T) {
	s, db := setupTestStore(t)
	ctx := context.Background()
	venue := mustVenue(t, s, "The Shire", "It's fictional")
	event := mustEvent(t, s, "Elevensies", venue)
	dt1 := mustDateTime(t, s, event, "2018-12-01", "10:59", "90m")
	mustDateTime(t, s, event, "2018-12-01", "11:02", "87m")
	bilbo := mustParticipant(t, s, "Bilbo", model.ParticipantOptions{Organizer: true})

	if _, err := s.RSVP(ctx, event, bilbo, dt1, -1); err != nil {
		t.Fatalf("RSVP() error = %v", err)
	}
	id, err := s.RSVP(ctx, event, bilbo, dt1, 1)
	if err != nil {
		t.Fatalf("second RSVP() error = %v", err)
	}

	got, err := s.GetRSVPs(ctx, event, bilbo)
	if err != nil {
		t.Fatalf("GetRSVPs() error = %v", err)
	}
	if want := map[int64]int{dt1: 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("GetRSVPs() = %v, want %v", got, want)
	}
	if n := countRSVPs(t, db, event); n != 1 {
		t.Errorf("rsvp rows = %d, want 1", n)
	}
	var surviving int64
	if err := db.SQL.QueryRow("SELECT id FROM rsvps WHERE event = ?", event).Scan(&surviving); err != nil {
		t.Fatalf("select error = %v", err)
	}
	if surviving != id {
		t.Errorf("RSVP() id = %d, surviving row id = %d", id, surviving)
	}

	t.Run("rejects option of another event", func(t *testing.T) {
		other := mustEvent(t, s, "Second Breakfast", venue)
		if _, err := s.RSVP(ctx, other, bilbo, dt1, 1); !errors.Is(err, ErrDateTimeMismatch) {
			t.Errorf("RSVP() error = %v, want ErrDateTimeMismatch", err)
		}
	})
	t.Run("rejects bad attend", func(t *testing.T) {
		if _, err := s.RSVP(ctx, event, bilbo, dt1, 2); !errors.Is(err, validate.ErrInvalid) {
			t.Errorf("RSVP() error = %v, want ErrInvalid", err)
		}
	})
}

func TestCreateDateTimeValidates(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	event := mustEvent(t, s, "Elevensies", mustVenue(t, s, "The Shire", ""))

	tests := []struct {
		date, hhmm, duration string
	}{
		{"201-12-01", "10:59", "90m"},
		{"2018-12-01", "11:00 am", "90m"},
		{"2018-12-01", "10:59", "90s"},
	}
	for _, tt := range tests {
		if _, err := s.CreateDateTime(ctx, event, tt.date, tt.hhmm, tt.duration); !errors.Is(err, validate.ErrInvalid) {
			t.Errorf("CreateDateTime(%q, %q, %q) error = %v, want ErrInvalid", tt.date, tt.hhmm, tt.duration, err)
		}
	}
	if _, err := s.CreateDateTime(ctx, 42, "2018-12-01", "10:59", "90m"); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateDateTime(unknown event) error = %v, want ErrNotFound", err)
	}
}

func TestNeverPropagation(t *testing.T) {
	t.Run("never before option", func(t *testing.T) {
		s, _ := setupTestStore(t)
		ctx := context.Background()
		event := mustEvent(t, s, "Elevensies", mustVenue(t, s, "The Shire", ""))
		bilbo := mustParticipant(t, s, "Bilbo", model.ParticipantOptions{Organizer: true})

		if err := s.Never(ctx, bilbo, "2012-01-01"); err != nil {
			t.Fatalf("Never() error = %v", err)
		}
		dt := mustDateTime(t, s, event, "2012-01-01", "10:00", "60m")
		other := mustDateTime(t, s, event, "2012-01-02", "10:00", "60m")

		detail, err := s.CollectRSVPs(ctx, event, bilbo)
		if err != nil {
			t.Fatalf("CollectRSVPs() error = %v", err)
		}
		want := model.Detail{dt: {bilbo: -1}}
		if !reflect.DeepEqual(detail, want) {
			t.Errorf("CollectRSVPs() = %v, want %v", detail, want)
		}
		if _, ok := detail[other]; ok {
			t.Errorf("option on another date received an answer")
		}
	})

	t.Run("option before never, across events", func(t *testing.T) {
		s, _ := setupTestStore(t)
		ctx := context.Background()
		venue := mustVenue(t, s, "The Shire", "")
		e1 := mustEvent(t, s, "Elevensies", venue)
		e2 := mustEvent(t, s, "Second Breakfast", venue)
		d1 := mustDateTime(t, s, e1, "2012/1/1", "10:00", "60m")
		d2 := mustDateTime(t, s, e2, "2012-01-01", "08:00", "30m")
		frodo := mustParticipant(t, s, "Frodo", model.ParticipantOptions{})

		if _, err := s.RSVP(ctx, e1, frodo, d1, 1); err != nil {
			t.Fatalf("RSVP() error = %v", err)
		}
		if err := s.Never(ctx, frodo, "20120101"); err != nil {
			t.Fatalf("Never() error = %v", err)
		}
		for event, dt := range map[int64]int64{e1: d1, e2: d2} {
			got, err := s.GetRSVPs(ctx, event, frodo)
			if err != nil {
				t.Fatalf("GetRSVPs() error = %v", err)
			}
			if got[dt] != -1 {
				t.Errorf("event %d answer = %v, want -1", event, got)
			}
		}

		t.Run("explicit answer overrides never", func(t *testing.T) {
			if _, err := s.RSVP(ctx, e1, frodo, d1, 1); err != nil {
				t.Fatalf("RSVP() error = %v", err)
			}
			got, _ := s.GetRSVPs(ctx, e1, frodo)
			if got[d1] != 1 {
				t.Errorf("answer after override = %d, want 1", got[d1])
			}
		})

		t.Run("never is idempotent", func(t *testing.T) {
			if err := s.Never(ctx, frodo, "2012-01-01"); err != nil {
				t.Fatalf("Never() error = %v", err)
			}
			nevers, err := s.GetNevers(ctx, frodo, "")
			if err != nil {
				t.Fatalf("GetNevers() error = %v", err)
			}
			if !reflect.DeepEqual(nevers, []string{"2012-01-01"}) {
				t.Errorf("GetNevers() = %v", nevers)
			}
		})
	})

	t.Run("unknown participant fails", func(t *testing.T) {
		s, _ := setupTestStore(t)
		if err := s.Never(context.Background(), 7, "2012-01-01"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Never(unknown participant) error = %v, want ErrNotFound", err)
		}
	})
}

func TestGetNeversSince(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	sam := mustParticipant(t, s, "Sam", model.ParticipantOptions{})
	for _, d := range []string{"2019-03-01", "2018-12-25", "2019-1-5"} {
		if err := s.Never(ctx, sam, d); err != nil {
			t.Fatalf("Never(%q) error = %v", d, err)
		}
	}
	all, err := s.GetNevers(ctx, sam, "")
	if err != nil {
		t.Fatalf("GetNevers() error = %v", err)
	}
	if want := []string{"2018-12-25", "2019-01-05", "2019-03-01"}; !reflect.DeepEqual(all, want) {
		t.Errorf("GetNevers() = %v, want %v", all, want)
	}
	after, err := s.GetNevers(ctx, sam, "2019-01-05")
	if err != nil {
		t.Fatalf("GetNevers(since) error = %v", err)
	}
	if want := []string{"2019-03-01"}; !reflect.DeepEqual(after, want) {
		t.Errorf("GetNevers(since) = %v, want %v", after, want)
	}
}

func TestSummarizeRSVPs(t *testing.T) {
	s, db := setupTestStore(t)
	ctx := context.Background()
	event := mustEvent(t, s, "Elevensies", mustVenue(t, s, "The Shire", ""))
	dt1 := mustDateTime(t, s, event, "2018-12-01", "10:59", "90m")
	dt2 := mustDateTime(t, s, event, "2018-12-01", "11:02", "87m")
	bilbo := mustParticipant(t, s, "Bilbo", model.ParticipantOptions{Organizer: true})
	frodo := mustParticipant(t, s, "Frodo", model.ParticipantOptions{})
	sam := mustParticipant(t, s, "Sam", model.ParticipantOptions{})

	if _, err := s.RSVP(ctx, event, bilbo, dt1, 1); err != nil {
		t.Fatalf("RSVP() error = %v", err)
	}
	if _, err := s.RSVP(ctx, event, frodo, dt1, -1); err != nil {
		t.Fatalf("RSVP() error = %v", err)
	}

	got, err := s.SummarizeRSVPs(ctx, event, NoViewer)
	if err != nil {
		t.Fatalf("SummarizeRSVPs() error = %v", err)
	}
	if want := (model.Summary{dt1: {1: 1, -1: 1}}); !reflect.DeepEqual(got, want) {
		t.Errorf("SummarizeRSVPs() = %v, want %v", got, want)
	}
	if n := countRSVPs(t, db, event); n != 2 {
		t.Errorf("rows after viewerless summary = %d, want 2", n)
	}

	withViewer, err := s.SummarizeRSVPs(ctx, event, sam)
	if err != nil {
		t.Fatalf("SummarizeRSVPs(viewer) error = %v", err)
	}
	want := model.Summary{dt1: {1: 1, -1: 1, 0: 1}, dt2: {0: 1}}
	if !reflect.DeepEqual(withViewer, want) {
		t.Errorf("SummarizeRSVPs(viewer) = %v, want %v", withViewer, want)
	}
	again, err := s.SummarizeRSVPs(ctx, event, sam)
	if err != nil {
		t.Fatalf("SummarizeRSVPs(viewer) again error = %v", err)
	}
	plain, err := s.SummarizeRSVPs(ctx, event, NoViewer)
	if err != nil {
		t.Fatalf("SummarizeRSVPs() again error = %v", err)
	}
	if !reflect.DeepEqual(again, withViewer) || !reflect.DeepEqual(plain, withViewer) {
		t.Errorf("repeated summaries differ: %v / %v / %v", withViewer, again, plain)
	}

	t.Run("unknown viewer", func(t *testing.T) {
		if _, err := s.SummarizeRSVPs(ctx, event, 404); !errors.Is(err, ErrNotFound) {
			t.Errorf("SummarizeRSVPs(unknown viewer) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("defaults never override answers", func(t *testing.T) {
		if _, err := s.SummarizeRSVPs(ctx, event, bilbo); err != nil {
			t.Fatalf("SummarizeRSVPs() error = %v", err)
		}
		got, _ := s.GetRSVPs(ctx, event, bilbo)
		if want := map[int64]int{dt1: 1, dt2: 0}; !reflect.DeepEqual(got, want) {
			t.Errorf("GetRSVPs() = %v, want %v", got, want)
		}
	})
}

func TestCollectRSVPsRequiresOrganizer(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	event := mustEvent(t, s, "Elevensies", mustVenue(t, s, "The Shire", ""))
	dt := mustDateTime(t, s, event, "2018-12-01", "10:59", "90m")
	bilbo := mustParticipant(t, s, "Bilbo", model.ParticipantOptions{Organizer: true})
	frodo := mustParticipant(t, s, "Frodo", model.ParticipantOptions{})
	if _, err := s.RSVP(ctx, event, bilbo, dt, 1); err != nil {
		t.Fatalf("RSVP() error = %v", err)
	}
	if _, err := s.RSVP(ctx, event, frodo, dt, -1); err != nil {
		t.Fatalf("RSVP() error = %v", err)
	}

	for _, viewer := range []int64{frodo, 404} {
		got, err := s.CollectRSVPs(ctx, event, viewer)
		if err != nil {
			t.Fatalf("CollectRSVPs(%d) error = %v", viewer, err)
		}
		if len(got) != 0 {
			t.Errorf("CollectRSVPs(%d) = %v, want empty", viewer, got)
		}
	}
	got, err := s.CollectRSVPs(ctx, event, bilbo)
	if err != nil {
		t.Fatalf("CollectRSVPs(organizer) error = %v", err)
	}
	if want := (model.Detail{dt: {bilbo: 1, frodo: -1}}); !reflect.DeepEqual(got, want) {
		t.Errorf("CollectRSVPs(organizer) = %v, want %v", got, want)
	}
}

func TestGetEventWithViewerAndClose(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	venue := mustVenue(t, s, "The Shire", "")
	event := mustEvent(t, s, "Elevensies", venue)
	dt1 := mustDateTime(t, s, event, "2018-12-01", "10:59", "90m")
	dt2 := mustDateTime(t, s, event, "2018-12-01", "11:02", "87m")
	bilbo := mustParticipant(t, s, "Bilbo", model.ParticipantOptions{})
	if _, err := s.RSVP(ctx, event, bilbo, dt2, 1); err != nil {
		t.Fatalf("RSVP() error = %v", err)
	}

	ev, err := s.GetEvent(ctx, event, bilbo)
	if err != nil {
		t.Fatalf("GetEvent() error = %v", err)
	}
	if len(ev.DateTimes) != 2 {
		t.Fatalf("GetEvent() options = %d, want 2", len(ev.DateTimes))
	}
	if ev.DateTimes[0].Attend != nil {
		t.Errorf("unanswered option attend = %d, want nil", *ev.DateTimes[0].Attend)
	}
	if a := ev.DateTimes[1].Attend; a == nil || *a != 1 {
		t.Errorf("answered option attend = %v, want 1", a)
	}

	if err := s.CloseEvent(ctx, event, dt1); err != nil {
		t.Fatalf("CloseEvent() error = %v", err)
	}
	ev, err = s.GetEvent(ctx, event, NoViewer)
	if err != nil {
		t.Fatalf("GetEvent() error = %v", err)
	}
	if !ev.Closed() || ev.DateTime.ID != dt1 || ev.DateTime.HHMM != "10:59" {
		t.Errorf("closed event dateTime = %+v", ev.DateTime)
	}

	t.Run("close with another event's option", func(t *testing.T) {
		other := mustEvent(t, s, "Second Breakfast", venue)
		if err := s.CloseEvent(ctx, other, dt1); !errors.Is(err, ErrDateTimeMismatch) {
			t.Errorf("CloseEvent() error = %v, want ErrDateTimeMismatch", err)
		}
	})
	t.Run("close without option reopens", func(t *testing.T) {
		if err := s.CloseEvent(ctx, event, NoDateTime); err != nil {
			t.Fatalf("CloseEvent() error = %v", err)
		}
		ev, _ := s.GetEvent(ctx, event, NoViewer)
		if ev.Closed() {
			t.Errorf("event still closed")
		}
	})
	t.Run("missing event", func(t *testing.T) {
		ev, err := s.GetEvent(ctx, 999, NoViewer)
		if err != nil || ev != nil {
			t.Errorf("GetEvent(missing) = %v, %v; want nil, nil", ev, err)
		}
		if err := s.CloseEvent(ctx, 999, NoDateTime); !errors.Is(err, ErrNotFound) {
			t.Errorf("CloseEvent(missing) error = %v, want ErrNotFound", err)
		}
	})
}

func TestGetEventsAndVenuesFilter(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	shire := mustVenue(t, s, "The Shire", "It's fictional")
	bree := mustVenue(t, s, "Prancing Pony", "Bree")
	e1 := mustEvent(t, s, "Elevensies", shire)
	e2 := mustEvent(t, s, "Second Breakfast", shire)
	e3 := mustEvent(t, s, "Pony Supper", bree)

	tests := []struct {
		name string
		raw  map[string]any
		want []int64
	}{
		{"everything", nil, []int64{e1, e2, e3}},
		{"by venue", map[string]any{"venueId": shire}, []int64{e1, e2}},
		{"by substring", map[string]any{"name": "Br"}, []int64{e2}},
		{"case sensitive", map[string]any{"name": "br"}, []int64{}},
		{"conjunction", map[string]any{"venueId": bree, "name": "Pony"}, []int64{e3}},
		{"by id", map[string]any{"id": "2"}, []int64{e2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.raw)
			if err != nil {
				t.Fatalf("ParseFilter() error = %v", err)
			}
			got, err := s.GetEvents(ctx, f)
			if err != nil {
				t.Fatalf("GetEvents() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetEvents() = %v, want %v", got, tt.want)
			}
		})
	}

	venues, err := s.GetVenues(ctx, Filter{"address": Contains("It's")})
	if err != nil {
		t.Fatalf("GetVenues() error = %v", err)
	}
	if len(venues) != 1 || venues[0].ID != shire || venues[0].Address != "It's fictional" {
		t.Errorf("GetVenues() = %+v", venues)
	}
}

func TestParticipants(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	bilbo := mustParticipant(t, s, "Bilbo", model.ParticipantOptions{Organizer: true, Email: "bilbo@shire.me"})
	frodo := mustParticipant(t, s, "Frodo", model.ParticipantOptions{})

	if _, err := s.CreateParticipant(ctx, "Bilbo", model.ParticipantOptions{}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate CreateParticipant() error = %v, want ErrConflict", err)
	}

	id, ok, err := s.GetUserID(ctx, "Frodo")
	if err != nil || !ok || id != frodo {
		t.Errorf("GetUserID(Frodo) = %d, %v, %v", id, ok, err)
	}
	if _, ok, err := s.GetUserID(ctx, "Gollum"); ok || err != nil {
		t.Errorf("GetUserID(Gollum) found=%v err=%v", ok, err)
	}

	info, err := s.GetUserInfo(ctx, bilbo)
	if err != nil {
		t.Fatalf("GetUserInfo() error = %v", err)
	}
	want := &model.Participant{ID: bilbo, Name: "Bilbo", Organizer: true, Email: "bilbo@shire.me"}
	if !reflect.DeepEqual(info, want) {
		t.Errorf("GetUserInfo() = %+v, want %+v", info, want)
	}
	if info, err := s.GetUserInfo(ctx, 77); info != nil || err != nil {
		t.Errorf("GetUserInfo(missing) = %v, %v", info, err)
	}

	t.Run("section vocabulary", func(t *testing.T) {
		for _, name := range []string{"Tenor", "bass"} {
			if err := s.CreateSection(ctx, name); err != nil {
				t.Fatalf("CreateSection(%q) error = %v", name, err)
			}
		}
		if err := s.CreateSection(ctx, "TENOR"); err != nil {
			t.Fatalf("CreateSection(duplicate) error = %v", err)
		}
		got, err := s.UpdateUserSection(ctx, frodo, "TeNoR")
		if err != nil || got != "tenor" {
			t.Errorf("UpdateUserSection(TeNoR) = %q, %v; want tenor", got, err)
		}
		got, err = s.UpdateUserSection(ctx, frodo, "kazoo")
		if err != nil || got != "tenor" {
			t.Errorf("UpdateUserSection(kazoo) = %q, %v; want tenor", got, err)
		}
		info, _ := s.GetUserInfo(ctx, frodo)
		if info.Section != "tenor" {
			t.Errorf("stored section = %q", info.Section)
		}
		if _, err := s.UpdateUserSection(ctx, 99, "bass"); !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateUserSection(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("credentials", func(t *testing.T) {
		if err := s.SetPassword(ctx, bilbo, "hash"); err != nil {
			t.Fatalf("SetPassword() error = %v", err)
		}
		c, err := s.GetCredentials(ctx, "Bilbo")
		if err != nil || c == nil || c.PasswordHash != "hash" || !c.Organizer {
			t.Errorf("GetCredentials() = %+v, %v", c, err)
		}
		if err := s.SetPassword(ctx, 99, "hash"); !errors.Is(err, ErrNotFound) {
			t.Errorf("SetPassword(missing) error = %v, want ErrNotFound", err)
		}
	})
}

func TestKeyValues(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	if _, ok, err := s.GetValue(ctx, "motd"); ok || err != nil {
		t.Errorf("GetValue(unset) ok=%v err=%v", ok, err)
	}
	for _, v := range []string{"hello", "second"} {
		if err := s.SetValue(ctx, "motd", v); err != nil {
			t.Fatalf("SetValue() error = %v", err)
		}
	}
	v, ok, err := s.GetValue(ctx, "motd")
	if err != nil || !ok || v != "second" {
		t.Errorf("GetValue() = %q, %v, %v", v, ok, err)
	}
}

func TestUnimplementedTimekeeper(t *testing.T) {
	var tk Timekeeper = UnimplementedTimekeeper{}
	if _, err := tk.CreateVenue(context.Background(), "x", "y"); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("CreateVenue() error = %v, want ErrNotImplemented", err)
	}
	if err := tk.Never(context.Background(), 1, "2012-01-01"); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Never() error = %v, want ErrNotImplemented", err)
	}
}
