package midi

import (
	"errors"
	"fmt"

	"github.com/mirkit/miditect/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// defaultTempo is 120 BPM in microseconds per quarter note, used when a
// file carries no set_tempo event.
const defaultTempo = 500000.0

// minNoteDuration is the noise floor: notes at or under 5 ms never make
// it into a track's list.
const minNoteDuration = 0.005

type noteKey struct {
	channel uint8
	pitch   uint8
}

// Extract converts a parsed SMF into per-track, time-stamped note
// events. The first set_tempo event found (scanning tracks in file
// order) becomes the single global tempo; mid-piece tempo changes are
// not supported and all tick-to-second conversion uses that one value.
func Extract(s *smf.SMF, path string) (*model.MidiData, error) {
	metric, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, &ParseError{Path: path, Err: errors.New("unsupported SMPTE time format")}
	}
	ticksPerBeat := int(metric)
	if ticksPerBeat <= 0 {
		return nil, &ParseError{Path: path, Err: errors.New("ticks per beat is zero")}
	}

	tempo := defaultTempo
	var rawTempoEvents []model.TempoEvent

	// take the first tempo as the global tempo
	for _, track := range s.Tracks {
		var absTicks int64
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			var bpm float64
			if evt.Message.GetMetaTempo(&bpm) && bpm > 0 {
				tempo = 60000000.0 / bpm
				rawTempoEvents = append(rawTempoEvents, model.TempoEvent{
					AbsTicks:     absTicks,
					Microseconds: tempo,
				})
				break
			}
		}
		if len(rawTempoEvents) > 0 {
			break
		}
	}

	ticksToSeconds := func(ticks int64) float64 {
		return float64(ticks) * tempo / float64(ticksPerBeat) / 1e6
	}

	tracks := make(map[string][]model.NoteEvent)
	var order []string

	for i, track := range s.Tracks {
		trackName := fmt.Sprintf("Track_%d", i)
		for _, evt := range track {
			var name string
			if evt.Message.GetMetaTrackName(&name) {
				if name != "" {
					trackName = name
				}
				break
			}
		}

		var absTicks int64
		active := make(map[noteKey]model.NoteEvent)
		noteList := []model.NoteEvent{}

		for _, evt := range track {
			absTicks += int64(evt.Delta)
			timeSec := ticksToSeconds(absTicks)

			var ch, pitch, vel uint8
			switch {
			case evt.Message.GetNoteOn(&ch, &pitch, &vel):
				key := noteKey{channel: ch, pitch: pitch}
				if vel > 0 {
					// a retrigger on the same key silently drops the
					// pending note
					active[key] = model.NoteEvent{
						StartTime: timeSec,
						EndTime:   timeSec,
						Pitch:     pitch,
						Velocity:  vel,
						Track:     trackName,
						Channel:   ch,
					}
				} else {
					noteList = closeNote(active, key, timeSec, noteList)
				}
			case evt.Message.GetNoteOff(&ch, &pitch, &vel):
				noteList = closeNote(active, noteKey{channel: ch, pitch: pitch}, timeSec, noteList)
			}
		}

		// notes still pending at end of track are dropped

		if _, seen := tracks[trackName]; !seen {
			order = append(order, trackName)
		}
		tracks[trackName] = noteList
	}

	secondsPerBeat := ticksToSeconds(int64(ticksPerBeat))
	bpm := 120.0
	if secondsPerBeat > 0 {
		bpm = 60.0 / secondsPerBeat
	}

	return &model.MidiData{
		Tempo:        bpm,
		TicksPerBeat: ticksPerBeat,
		Tracks:       tracks,
		Order:        order,
		Metadata: model.Metadata{
			FilePath:       path,
			RawTempoEvents: rawTempoEvents,
		},
	}, nil
}

func closeNote(active map[noteKey]model.NoteEvent, key noteKey, timeSec float64, notes []model.NoteEvent) []model.NoteEvent {
	note, ok := active[key]
	if !ok {
		return notes
	}
	delete(active, key)
	note.EndTime = timeSec
	if note.EndTime > note.StartTime+minNoteDuration {
		notes = append(notes, note)
	}
	return notes
}

// ExtractFile reads, parses and extracts in one go.
func ExtractFile(path string) (*model.MidiData, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return Extract(s, path)
}
