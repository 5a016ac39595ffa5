// Package analysis derives key, chord progression, rhythm statistics
// and structure from extracted note data. Every function is a pure,
// synchronous transformation; identical input always produces
// identical output, which is why all ordering and tie-breaking below
// is explicit.
package analysis

import (
	"sort"

	"github.com/mirkit/miditect/model"
)

// Analyze runs the full analysis over one parsed file.
func Analyze(md *model.MidiData) model.MusicAnalysis {
	all := GatherAllNotes(md)

	chordProg := SegmentChords(all, ChordWindow)
	rhythm := AnalyzeRhythm(all, md.Tempo)

	return model.MusicAnalysis{
		Key:              DetectKey(all),
		ChordProgression: chordProg,
		RhythmPatterns:   rhythm,
		Structure:        BuildStructure(chordProg, rhythm),
	}
}

// GatherAllNotes flattens all tracks into one slice sorted by onset.
// Tracks are visited in their recorded order and the sort is stable,
// so equal onsets keep track order.
func GatherAllNotes(md *model.MidiData) []model.NoteEvent {
	var notes []model.NoteEvent
	for _, name := range md.Order {
		notes = append(notes, md.Tracks[name]...)
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].StartTime < notes[j].StartTime
	})
	return notes
}
