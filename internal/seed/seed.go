// Package seed bulk-creates venues, sections, participants, events and
// their options from a yaml, json or toml file.  Applying the same file
// twice leaves the database unchanged.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iliyamo/timekeeper/internal/model"
	"github.com/iliyamo/timekeeper/internal/repository"
	"github.com/iliyamo/timekeeper/internal/utils"
)

// File is the decoded seed document.
type File struct {
	Venues       []Venue       `mapstructure:"venues"`
	Sections     []string      `mapstructure:"sections"`
	Participants []Participant `mapstructure:"participants"`
	Events       []Event       `mapstructure:"events"`
	Nevers       []Never       `mapstructure:"nevers"`
}

type Venue struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
}

type Participant struct {
	Name      string `mapstructure:"name"`
	Section   string `mapstructure:"section"`
	Organizer bool   `mapstructure:"organizer"`
	Email     string `mapstructure:"email"`
	Password  string `mapstructure:"password"`
}

type Event struct {
	Name        string     `mapstructure:"name"`
	Venue       string     `mapstructure:"venue"` // venue name, declared under venues
	Description string     `mapstructure:"description"`
	DateTimes   []DateTime `mapstructure:"date_times"`
}

type DateTime struct {
	Date     string `mapstructure:"date"`
	Time     string `mapstructure:"time"`
	Duration string `mapstructure:"duration"`
}

type Never struct {
	Participant string `mapstructure:"participant"`
	Date        string `mapstructure:"date"`
}

// Report counts what Apply created.  Venues, participants and events that
// already existed are not counted.
type Report struct {
	Venues       int
	Participants int
	Events       int
	DateTimes    int
	Nevers       int
}

// Load reads a seed file; the format follows the file extension.
func Load(path string) (File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return File{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return decode(v)
}

// Read decodes a seed document of the given format ("yaml", "json", ...).
func Read(r io.Reader, format string) (File, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return File{}, fmt.Errorf("read seed: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (File, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("decode seed: %w", err)
	}
	return f, nil
}

// Apply creates the contents of f in dependency order.  Events whose name
// is taken are skipped together with their options.
func Apply(ctx context.Context, tk repository.Timekeeper, f File, bcryptCost int, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("seed")
	var rep Report

	venues := make(map[string]int64, len(f.Venues))
	for _, v := range f.Venues {
		res, err := tk.CreateVenue(ctx, v.Name, v.Address)
		if err != nil {
			return rep, fmt.Errorf("venue %q: %w", v.Name, err)
		}
		venues[v.Name] = res.ID
		if !res.Existed {
			rep.Venues++
		}
	}

	for _, s := range f.Sections {
		if err := tk.CreateSection(ctx, s); err != nil {
			return rep, fmt.Errorf("section %q: %w", s, err)
		}
	}

	people := make(map[string]int64, len(f.Participants))
	for _, p := range f.Participants {
		id, created, err := ensureParticipant(ctx, tk, p)
		if err != nil {
			return rep, fmt.Errorf("participant %q: %w", p.Name, err)
		}
		people[p.Name] = id
		if created {
			rep.Participants++
		}
		if p.Section != "" {
			got, err := tk.UpdateUserSection(ctx, id, p.Section)
			if err != nil {
				return rep, fmt.Errorf("participant %q: %w", p.Name, err)
			}
			if !strings.EqualFold(got, p.Section) {
				log.Warn("section not in vocabulary", zap.String("participant", p.Name), zap.String("section", p.Section))
			}
		}
		issue, err := needsPassword(ctx, tk, p, created)
		if err != nil {
			return rep, fmt.Errorf("participant %q: %w", p.Name, err)
		}
		if issue {
			hash, err := utils.HashPassword(p.Password, bcryptCost)
			if err != nil {
				return rep, err
			}
			if err := tk.SetPassword(ctx, id, hash); err != nil {
				return rep, fmt.Errorf("participant %q: %w", p.Name, err)
			}
		}
	}

	for _, e := range f.Events {
		venue, ok := venues[e.Venue]
		if !ok {
			return rep, fmt.Errorf("event %q: venue %q is not declared", e.Name, e.Venue)
		}
		id, err := tk.CreateEvent(ctx, e.Name, venue, e.Description)
		if errors.Is(err, repository.ErrConflict) {
			log.Info("event exists, skipped", zap.String("event", e.Name))
			continue
		}
		if err != nil {
			return rep, fmt.Errorf("event %q: %w", e.Name, err)
		}
		rep.Events++
		for _, dt := range e.DateTimes {
			if _, err := tk.CreateDateTime(ctx, id, dt.Date, dt.Time, dt.Duration); err != nil {
				return rep, fmt.Errorf("event %q option %s %s: %w", e.Name, dt.Date, dt.Time, err)
			}
			rep.DateTimes++
		}
	}

	for _, n := range f.Nevers {
		id, ok := people[n.Participant]
		if !ok {
			return rep, fmt.Errorf("never %s: participant %q is not declared", n.Date, n.Participant)
		}
		if err := tk.Never(ctx, id, n.Date); err != nil {
			return rep, fmt.Errorf("never %s for %q: %w", n.Date, n.Participant, err)
		}
		rep.Nevers++
	}

	log.Info("seed applied",
		zap.Int("venues", rep.Venues),
		zap.Int("participants", rep.Participants),
		zap.Int("events", rep.Events),
		zap.Int("date_times", rep.DateTimes),
		zap.Int("nevers", rep.Nevers))
	return rep, nil
}

// needsPassword reports whether p's seed password should be stored.  An
// existing participant keeps any password already issued to them.
func needsPassword(ctx context.Context, tk repository.Timekeeper, p Participant, created bool) (bool, error) {
	if p.Password == "" {
		return false, nil
	}
	if created {
		return true, nil
	}
	cred, err := tk.GetCredentials(ctx, p.Name)
	if err != nil {
		return false, err
	}
	return cred == nil || cred.PasswordHash == "", nil
}

func ensureParticipant(ctx context.Context, tk repository.Timekeeper, p Participant) (int64, bool, error) {
	id, err := tk.CreateParticipant(ctx, p.Name, model.ParticipantOptions{Organizer: p.Organizer, Email: p.Email})
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, repository.ErrConflict) {
		return 0, false, err
	}
	id, ok, err := tk.GetUserID(ctx, p.Name)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, fmt.Errorf("conflict without a matching participant")
	}
	return id, false, nil
}
