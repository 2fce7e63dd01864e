// Package events defines calendar events (festivals, national days,
// lunar observances) and matches them against resolved dates.
//
// Events are static configuration: loaded once, read-only afterwards,
// safe to share across goroutines. Matching is pure; the lunar-calendar
// inputs a match needs are supplied by the caller in a DayContext.
package events

import "fmt"

// Kind discriminates how an event's date is interpreted.
type Kind string

const (
	// KindGregorian recurs on a fixed Gregorian month/day.
	KindGregorian Kind = "gregorian"
	// KindBikramRecurring recurs on a fixed BS month/day.
	KindBikramRecurring Kind = "bikram_recurring"
	// KindBikramFixed names one exact BS date.
	KindBikramFixed Kind = "bikram_fixed"
	// KindLunar is triggered by a (lunar month, paksha, tithi) triple.
	KindLunar Kind = "lunar"
)

// Event is one calendar event definition. Date is "MM/DD" for the
// recurring kinds and "YYYY/MM/DD" for KindBikramFixed; lunar events use
// the LunarMonth/Paksha/Tithi triple instead. StartYear/EndYear bound an
// optional validity window (BS years for Bikram and lunar kinds,
// Gregorian years for KindGregorian); zero means unbounded.
type Event struct {
	Kind     Kind   `yaml:"kind" json:"kind"`
	Name     string `yaml:"name" json:"name"`
	NameEn   string `yaml:"name_en,omitempty" json:"name_en,omitempty"`
	Date     string `yaml:"date,omitempty" json:"date,omitempty"`
	Detail   string `yaml:"detail,omitempty" json:"detail,omitempty"`
	DetailEn string `yaml:"detail_en,omitempty" json:"detail_en,omitempty"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
	Holiday  bool   `yaml:"holiday,omitempty" json:"holiday"`

	LunarMonth string `yaml:"lunar_month,omitempty" json:"lunar_month,omitempty"`
	Paksha     string `yaml:"paksha,omitempty" json:"paksha,omitempty"`
	Tithi      string `yaml:"tithi,omitempty" json:"tithi,omitempty"`

	StartYear int `yaml:"start_year,omitempty" json:"start_year,omitempty"`
	EndYear   int `yaml:"end_year,omitempty" json:"end_year,omitempty"`
}

// inWindow checks the optional year-range validity window.
func (e *Event) inWindow(year int) bool {
	if e.StartYear != 0 && year < e.StartYear {
		return false
	}
	if e.EndYear != 0 && year > e.EndYear {
		return false
	}
	return true
}

// Set is an immutable collection of event definitions grouped by kind.
type Set struct {
	Gregorian       []Event `yaml:"gregorian" json:"gregorian"`
	BikramRecurring []Event `yaml:"bikram_recurring" json:"bikram_recurring"`
	BikramFixed     []Event `yaml:"bikram_fixed" json:"bikram_fixed"`
	Lunar           []Event `yaml:"lunar" json:"lunar"`
}

// Len returns the total number of definitions in the set.
func (s *Set) Len() int {
	return len(s.Gregorian) + len(s.BikramRecurring) + len(s.BikramFixed) + len(s.Lunar)
}

// All returns every definition in the set, in kind order.
func (s *Set) All() []Event {
	out := make([]Event, 0, s.Len())
	out = append(out, s.Gregorian...)
	out = append(out, s.BikramRecurring...)
	out = append(out, s.BikramFixed...)
	out = append(out, s.Lunar...)
	return out
}

// LunarDay identifies where one civil day sits in the lunar calendar.
type LunarDay struct {
	Month    string // lunar month name, Devanagari
	Paksha   string
	Tithi    string
	IsAdhika bool
}

// equal compares the triple that decides whether a tithi persisted from
// the previous civil day.
func (d LunarDay) equal(o LunarDay) bool {
	return d.Month == o.Month && d.Paksha == o.Paksha && d.Tithi == o.Tithi
}

// DayContext carries everything the matcher needs for one civil day.
// Yesterday's lunar position implements the single-fire rule: a lunar
// event fires only on the first civil day showing its tithi.
// PrevMonthKshaya names the previous lunar month when that month was
// omitted (kshaya), letting its events shift into the current month.
type DayContext struct {
	GregorianYear  int
	GregorianMonth int
	GregorianDay   int

	BSYear  int
	BSMonth int // 1-12
	BSDay   int

	Today           LunarDay
	Yesterday       LunarDay
	PrevMonthKshaya string
}

// ForDate returns the events matching a resolved date, in kind order:
// Gregorian-fixed, BS-recurring, BS-fixed, then lunar.
func (s *Set) ForDate(ctx DayContext) []Event {
	var matched []Event

	gregKey := monthDay(ctx.GregorianMonth, ctx.GregorianDay)
	for _, e := range s.Gregorian {
		if e.inWindow(ctx.GregorianYear) && e.Date == gregKey {
			matched = append(matched, e)
		}
	}

	bsKey := monthDay(ctx.BSMonth, ctx.BSDay)
	for _, e := range s.BikramRecurring {
		if e.inWindow(ctx.BSYear) && e.Date == bsKey {
			matched = append(matched, e)
		}
	}

	fixedKey := fmt.Sprintf("%d/%s", ctx.BSYear, bsKey)
	for _, e := range s.BikramFixed {
		if e.Date == fixedKey {
			matched = append(matched, e)
		}
	}

	// No lunar observances during an intercalary month.
	if ctx.Today.IsAdhika {
		return matched
	}

	firstDayOfTithi := !ctx.Yesterday.equal(ctx.Today)
	for _, e := range s.Lunar {
		if !e.inWindow(ctx.BSYear) {
			continue
		}
		if e.Paksha != ctx.Today.Paksha || e.Tithi != ctx.Today.Tithi {
			continue
		}
		monthMatches := e.LunarMonth == ctx.Today.Month ||
			(ctx.PrevMonthKshaya != "" && e.LunarMonth == ctx.PrevMonthKshaya)
		if monthMatches && firstDayOfTithi {
			matched = append(matched, e)
		}
	}

	return matched
}

// HasHoliday reports whether any matched event is a public holiday.
func (s *Set) HasHoliday(ctx DayContext) bool {
	for _, e := range s.ForDate(ctx) {
		if e.Holiday {
			return true
		}
	}
	return false
}

func monthDay(month, day int) string {
	return fmt.Sprintf("%02d/%02d", month, day)
}
