// Package ordinal is a collection of value types that step through their values one by one,
// thus they can be used to build sequences with iotakit.
//
//   - Date steps by calendar days, and it supports random access.
//   - Weekday cycles through the days of the week in both directions.
//   - Patch steps through semantic version patch releases.
package ordinal

import (
	"encoding"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/timekit"
)

const ErrParse errorkit.Error = "ordinal: unable to parse value"

// DateLayout is the textual format of a Date.
const DateLayout = time.DateOnly

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day, stored as the number of days since 1970-01-01.
// The zero value is 1970-01-01.
type Date struct{ days int32 }

func NewDate(year int, month time.Month, day int) Date {
	return Date{days: int32(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, ErrParse.Wrap(err)
	}
	return DateOf(t), nil
}

// Time returns the midnight of the date in UTC.
func (d Date) Time() time.Time {
	return time.Unix(int64(d.days)*secondsPerDay, 0).UTC()
}

func (d Date) Weekday() Weekday { return WeekdayOf(d.Time().Weekday()) }

func (d Date) String() string { return d.Time().Format(DateLayout) }

func (d Date) Succ() Date { return Date{days: d.days + 1} }

func (d Date) Pred() Date { return Date{days: d.days - 1} }

// Sub returns the number of days from oth to d.
func (d Date) Sub(oth Date) int32 { return d.days - oth.days }

func (d Date) Add(days int32) Date { return Date{days: d.days + days} }

var (
	_ encoding.TextMarshaler   = Date{}
	_ encoding.TextUnmarshaler = (*Date)(nil)
)

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(text []byte) error {
	date, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// Weekday is a day of the week.
// It has no distance, because stepping forward eventually returns to the same day.
// The zero value is Sunday.
type Weekday struct{ d time.Weekday }

func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday{d: timekit.ShiftWeekday(wd, 0)}
}

// ParseWeekday accepts the English name of a day, or its three letter abbreviation, in any letter case.
func ParseWeekday(raw string) (Weekday, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, wd := range timekit.Weekdays() {
		name := strings.ToLower(wd.String())
		if raw == name || raw == name[:3] {
			return WeekdayOf(wd), nil
		}
	}
	return Weekday{}, ErrParse.F("unknown weekday: %q", raw)
}

func (w Weekday) Weekday() time.Weekday { return w.d }

func (w Weekday) String() string { return w.d.String() }

func (w Weekday) Succ() Weekday { return Weekday{d: timekit.ShiftWeekday(w.d, 1)} }

func (w Weekday) Pred() Weekday { return Weekday{d: timekit.ShiftWeekday(w.d, -1)} }

var (
	_ encoding.TextMarshaler   = Weekday{}
	_ encoding.TextUnmarshaler = (*Weekday)(nil)
)

func (w Weekday) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *Weekday) UnmarshalText(text []byte) error {
	wd, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*w = wd
	return nil
}

// Patch is a semantic version that steps to the next patch release.
// The successor of a pre-release is its release, so 1.2.3-rc.1 is followed by 1.2.3, then by 1.2.4.
type Patch struct{ v semver.Version }

func ParsePatch(raw string) (Patch, error) {
	v, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return Patch{}, ErrParse.Wrap(err)
	}
	return Patch{v: *v}, nil
}

func MustParsePatch(raw string) Patch {
	p, err := ParsePatch(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Patch) Version() *semver.Version {
	var v = p.v
	return &v
}

func (p Patch) String() string { return p.v.String() }

func (p Patch) Succ() Patch { return Patch{v: p.v.IncPatch()} }

// Equal compares versions by their precedence, so build metadata and the "v" prefix are ignored.
func (p Patch) Equal(oth Patch) bool { return p.v.Equal(&oth.v) }

var (
	_ encoding.TextMarshaler   = Patch{}
	_ encoding.TextUnmarshaler = (*Patch)(nil)
)

func (p Patch) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Patch) UnmarshalText(text []byte) error {
	v, err := ParsePatch(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
