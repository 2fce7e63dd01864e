package database

import (
	"fmt"
	"time"

	"github.com/nepcal/panchanga-api/internal/events"
)

// EventRecord is one stored event definition. It mirrors events.Event
// plus the row identity and timestamps the store adds.
type EventRecord struct {
	ID   int64       `json:"id"`
	Kind events.Kind `json:"kind"`

	Name     string `json:"name"`
	NameEn   string `json:"name_en,omitempty"`
	Date     string `json:"date,omitempty"` // "MM/DD", or "YYYY/MM/DD" for bikram_fixed
	Detail   string `json:"detail,omitempty"`
	DetailEn string `json:"detail_en,omitempty"`
	Category string `json:"category,omitempty"`
	Holiday  bool   `json:"holiday"`

	LunarMonth string `json:"lunar_month,omitempty"`
	Paksha     string `json:"paksha,omitempty"`
	Tithi      string `json:"tithi,omitempty"`

	StartYear int `json:"start_year,omitempty"`
	EndYear   int `json:"end_year,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidKinds returns every event kind the store accepts.
func ValidKinds() []events.Kind {
	return []events.Kind{
		events.KindGregorian,
		events.KindBikramRecurring,
		events.KindBikramFixed,
		events.KindLunar,
	}
}

// Validate checks the record is internally consistent for its kind.
func (r *EventRecord) Validate() error {
	valid := false
	for _, k := range ValidKinds() {
		if r.Kind == k {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid event kind %q", r.Kind)
	}
	if r.Name == "" {
		return fmt.Errorf("event name is required")
	}

	switch r.Kind {
	case events.KindLunar:
		if r.LunarMonth == "" || r.Paksha == "" || r.Tithi == "" {
			return fmt.Errorf("lunar event %q needs lunar_month, paksha and tithi", r.Name)
		}
	default:
		if r.Date == "" {
			return fmt.Errorf("%s event %q needs a date", r.Kind, r.Name)
		}
	}
	return nil
}

// Event converts the record to the matcher's event type.
func (r *EventRecord) Event() events.Event {
	return events.Event{
		Kind:       r.Kind,
		Name:       r.Name,
		NameEn:     r.NameEn,
		Date:       r.Date,
		Detail:     r.Detail,
		DetailEn:   r.DetailEn,
		Category:   r.Category,
		Holiday:    r.Holiday,
		LunarMonth: r.LunarMonth,
		Paksha:     r.Paksha,
		Tithi:      r.Tithi,
		StartYear:  r.StartYear,
		EndYear:    r.EndYear,
	}
}

// RecordFromEvent converts a matcher event to a storable record.
func RecordFromEvent(e events.Event) EventRecord {
	return EventRecord{
		Kind:       e.Kind,
		Name:       e.Name,
		NameEn:     e.NameEn,
		Date:       e.Date,
		Detail:     e.Detail,
		DetailEn:   e.DetailEn,
		Category:   e.Category,
		Holiday:    e.Holiday,
		LunarMonth: e.LunarMonth,
		Paksha:     e.Paksha,
		Tithi:      e.Tithi,
		StartYear:  e.StartYear,
		EndYear:    e.EndYear,
	}
}
