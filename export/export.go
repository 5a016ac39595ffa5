// Package export assembles extraction and analysis results into the
// final serializable document.
package export

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mirkit/miditect/analysis"
	"github.com/mirkit/miditect/model"
)

// round6 rounds a time field to 6 decimal places.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// BuildDocument merges one file's MidiData, MusicAnalysis and
// TrackMapping into a Document. Tracks appear in extraction order and
// every float time field is rounded to 6 decimals, so re-running on
// the same input reproduces the document byte for byte.
func BuildDocument(md *model.MidiData, ma model.MusicAnalysis, tm model.TrackMapping) model.Document {
	tracks := make([]model.DocTrack, 0, len(md.Order))
	for _, name := range md.Order {
		group, ok := tm.Mapping[name]
		if !ok {
			group = "GENERIC"
		}
		notes := md.Tracks[name]
		docNotes := make([]model.DocNote, 0, len(notes))
		for _, n := range notes {
			docNotes = append(docNotes, model.DocNote{
				Start:    round6(n.StartTime),
				End:      round6(n.EndTime),
				Pitch:    n.Pitch,
				Velocity: n.Velocity,
			})
		}
		tracks = append(tracks, model.DocTrack{
			Name:        name,
			TimbreGroup: group,
			Notes:       docNotes,
		})
	}

	beatDensity := ma.RhythmPatterns.BeatDensity
	if beatDensity == nil {
		beatDensity = []int{}
	}

	return model.Document{
		Meta: model.DocMeta{
			FilePath:        md.Metadata.FilePath,
			TempoBPM:        md.Tempo,
			TicksPerBeat:    md.TicksPerBeat,
			DurationSeconds: round6(md.Duration()),
		},
		Global: model.DocGlobal{
			Key:       ma.Key,
			NumTracks: len(md.Tracks),
		},
		Tracks: tracks,
		Timeline: model.DocTimeline{
			BinSize:     analysis.ChordWindow,
			Chords:      chordTimeline(ma.ChordProgression, analysis.ChordWindow),
			Sections:    sectionTimeline(ma.Structure.Sections, analysis.ChordWindow),
			BeatDensity: beatDensity,
		},
	}
}

// chordTimeline expands the chord progression's runs back into spans
// in seconds.
func chordTimeline(prog []string, binSize float64) []model.DocChord {
	out := []model.DocChord{}

	var current string
	started := false
	startBin := 0
	for i, ch := range prog {
		if !started {
			current = ch
			startBin = i
			started = true
		} else if ch != current {
			out = append(out, model.DocChord{
				Start: round6(float64(startBin) * binSize),
				End:   round6(float64(i) * binSize),
				Name:  current,
			})
			current = ch
			startBin = i
		}
	}
	if started {
		out = append(out, model.DocChord{
			Start: round6(float64(startBin) * binSize),
			End:   round6(float64(len(prog)) * binSize),
			Name:  current,
		})
	}
	return out
}

func sectionTimeline(sections []model.Section, binSize float64) []model.DocSection {
	out := make([]model.DocSection, 0, len(sections))
	for idx, sec := range sections {
		out = append(out, model.DocSection{
			Label:    fmt.Sprintf("sec_%d", idx),
			Chord:    sec.Chord,
			StartBin: sec.StartBin,
			EndBin:   sec.EndBin,
			Start:    round6(float64(sec.StartBin) * binSize),
			End:      round6(float64(sec.EndBin+1) * binSize),
		})
	}
	return out
}

// EncodeJSON serializes a document with stable formatting.
func EncodeJSON(doc model.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
