package events

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultFS embed.FS

// Default returns the event set shipped with the binary: the common
// definitions plus every embedded per-year file. The library works
// without any external configuration.
func Default() *Set {
	set := &Set{}

	entries, err := defaultFS.ReadDir("data")
	if err != nil {
		// The embed is part of the build; an unreadable embed is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("events: read embedded data: %v", err))
	}
	for _, entry := range entries {
		raw, err := defaultFS.ReadFile("data/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("events: read embedded %s: %v", entry.Name(), err))
		}
		var part Set
		if err := yaml.Unmarshal(raw, &part); err != nil {
			panic(fmt.Sprintf("events: parse embedded %s: %v", entry.Name(), err))
		}
		merge(set, &part)
	}

	tagKinds(set)
	return set
}

// LoadDir reads event definitions from a directory: events.yaml (common
// definitions) merged with events-<bsYear>.yaml when present, filtered
// by each event's validity window against bsYear. Missing files are not
// errors; a missing directory is.
func LoadDir(dir string, bsYear int) (*Set, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("events dir: %w", err)
	}

	set := &Set{}
	for _, name := range []string{"events.yaml", fmt.Sprintf("events-%d.yaml", bsYear)} {
		part, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if part != nil {
			merge(set, filterWindow(part, bsYear))
		}
	}

	tagKinds(set)
	return set, nil
}

// loadFile parses one YAML file into a Set; a missing file yields nil.
func loadFile(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var set Set
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &set, nil
}

func merge(dst, src *Set) {
	dst.Gregorian = append(dst.Gregorian, src.Gregorian...)
	dst.BikramRecurring = append(dst.BikramRecurring, src.BikramRecurring...)
	dst.BikramFixed = append(dst.BikramFixed, src.BikramFixed...)
	dst.Lunar = append(dst.Lunar, src.Lunar...)
}

// filterWindow drops events whose validity window excludes the year.
func filterWindow(s *Set, year int) *Set {
	keep := func(in []Event) []Event {
		out := in[:0:0]
		for _, e := range in {
			if e.inWindow(year) {
				out = append(out, e)
			}
		}
		return out
	}
	return &Set{
		Gregorian:       keep(s.Gregorian),
		BikramRecurring: keep(s.BikramRecurring),
		BikramFixed:     keep(s.BikramFixed),
		Lunar:           keep(s.Lunar),
	}
}

// tagKinds stamps the Kind field by grouping, so callers that flatten
// the set can still discriminate entries.
func tagKinds(s *Set) {
	for i := range s.Gregorian {
		s.Gregorian[i].Kind = KindGregorian
	}
	for i := range s.BikramRecurring {
		s.BikramRecurring[i].Kind = KindBikramRecurring
	}
	for i := range s.BikramFixed {
		s.BikramFixed[i].Kind = KindBikramFixed
	}
	for i := range s.Lunar {
		s.Lunar[i].Kind = KindLunar
	}
}

// FromEvents groups a flat, kind-tagged slice (for example rows loaded
// from the database) back into a Set.
func FromEvents(all []Event) *Set {
	set := &Set{}
	for _, e := range all {
		switch e.Kind {
		case KindGregorian:
			set.Gregorian = append(set.Gregorian, e)
		case KindBikramRecurring:
			set.BikramRecurring = append(set.BikramRecurring, e)
		case KindBikramFixed:
			set.BikramFixed = append(set.BikramFixed, e)
		case KindLunar:
			set.Lunar = append(set.Lunar, e)
		}
	}
	return set
}
