// Package timbre assigns tracks a coarse instrument-family category by
// keyword-matching their names.
package timbre

import (
	"strings"

	"github.com/mirkit/miditect/model"
)

// Keyword pairs one lowercase substring with the category it selects.
type Keyword struct {
	Substring string
	Category  string
}

// Rules is an ordered keyword table plus a fallback category. The
// slice order is the match priority: the first substring found in a
// track name wins.
type Rules struct {
	Keywords []Keyword
	Default  string
}

// Valid reports whether the table can be used at all. An unusable
// table falls back to the built-in default, it is not an error.
func (r *Rules) Valid() bool {
	return r != nil && len(r.Keywords) > 0 && r.Default != ""
}

// DefaultRules is the built-in mapping table.
func DefaultRules() Rules {
	return Rules{
		Keywords: []Keyword{
			// percussion
			{"drum", "DRUMS"},
			{"percussion", "DRUMS"},
			{"kick", "DRUMS"},
			{"snare", "DRUMS"},
			{"hihat", "DRUMS"},
			{"cymbal", "DRUMS"},

			{"bass", "BASS"},

			// piano / keyboards
			{"piano", "PIANO"},
			{"keys", "PIANO"},
			{"epiano", "PIANO"},

			{"guitar", "GUITAR"},
			{"acoustic", "GUITAR"},
			{"electric", "GUITAR"},

			{"violin", "STRINGS"},
			{"viola", "STRINGS"},
			{"cello", "STRINGS"},
			{"string", "STRINGS"},

			{"synth", "SYNTH"},
			{"lead", "SYNTH"},
			{"pad", "SYNTH"},
			{"pluck", "SYNTH"},

			{"vocal", "VOCAL"},
			{"voice", "VOCAL"},
			{"melody", "MELODY"},
		},
		Default: "GENERIC",
	}
}

// Mapper maps track names to timbre categories using one rule table.
type Mapper struct {
	rules Rules
}

// NewMapper builds a mapper; an invalid table is replaced by
// DefaultRules.
func NewMapper(rules *Rules) *Mapper {
	if !rules.Valid() {
		r := DefaultRules()
		return &Mapper{rules: r}
	}
	return &Mapper{rules: *rules}
}

// Categorize returns the category for one track name.
func (m *Mapper) Categorize(trackName string) string {
	lname := strings.ToLower(trackName)
	for _, kw := range m.rules.Keywords {
		if strings.Contains(lname, strings.ToLower(kw.Substring)) {
			return kw.Category
		}
	}
	return m.rules.Default
}

// MapTracks categorizes every track of a parsed file.
func (m *Mapper) MapTracks(md *model.MidiData) model.TrackMapping {
	mapping := make(map[string]string, len(md.Order))
	for _, name := range md.Order {
		mapping[name] = m.Categorize(name)
	}
	return model.TrackMapping{Mapping: mapping}
}

// MapTracks applies rules (or the built-in table when rules is nil or
// unusable) to all tracks of md.
func MapTracks(md *model.MidiData, rules *Rules) model.TrackMapping {
	return NewMapper(rules).MapTracks(md)
}
