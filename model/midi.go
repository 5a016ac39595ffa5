package model

// NoteEvent is one sounding note. It is created when a note-on with
// nonzero velocity is seen and finalized when the matching note-off
// arrives. Times are seconds from the start of the file.
type NoteEvent struct {
	StartTime float64
	EndTime   float64
	Pitch     uint8
	Velocity  uint8
	Track     string
	Channel   uint8
}

// Duration returns the sounding length of the note in seconds.
func (n NoteEvent) Duration() float64 {
	return n.EndTime - n.StartTime
}

// TempoEvent records a raw set_tempo occurrence: absolute tick position
// and tempo in microseconds per quarter note.
type TempoEvent struct {
	AbsTicks     int64
	Microseconds float64
}

// Metadata is free-form per-file info carried alongside the note data.
type Metadata struct {
	FilePath       string
	RawTempoEvents []TempoEvent
}

// MidiData is the parsed representation of one input file.
//
// Track names are unique keys; when two tracks resolve to the same name
// the later track's note list replaces the earlier one (last-wins), and
// the name keeps its original position in Order. Order exists so that
// every consumer iterates tracks deterministically instead of ranging
// over the map.
type MidiData struct {
	Tempo        float64 // BPM
	TicksPerBeat int
	Tracks       map[string][]NoteEvent
	Order        []string
	Metadata     Metadata
}

// Duration returns the maximum note end time across all tracks, 0 if
// the file holds no notes.
func (m *MidiData) Duration() float64 {
	var max float64
	for _, notes := range m.Tracks {
		for _, n := range notes {
			if n.EndTime > max {
				max = n.EndTime
			}
		}
	}
	return max
}

// NumNotes counts notes across all tracks.
func (m *MidiData) NumNotes() int {
	var total int
	for _, notes := range m.Tracks {
		total += len(notes)
	}
	return total
}
