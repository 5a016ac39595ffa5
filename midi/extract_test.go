package midi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func makeSMF(ticksPerBeat uint16, tracks ...smf.Track) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)
	s.Tracks = tracks
	return &s
}

func ev(delta uint32, msg []byte) smf.Event {
	return smf.Event{Delta: delta, Message: smf.Message(msg)}
}

func TestExtractBasicNote(t *testing.T) {
	track := smf.Track{
		ev(0, smf.MetaTrackSequenceName("Piano")),
		ev(0, smf.MetaTempo(120)),
		ev(0, gomidi.NoteOn(0, 60, 100)),
		ev(480, gomidi.NoteOff(0, 60)),
	}
	track.Close(0)

	md, err := Extract(makeSMF(480, track), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	assert.InDelta(120.0, md.Tempo, 1e-9)
	assert.Equal(480, md.TicksPerBeat)
	assert.Equal([]string{"Piano"}, md.Order)

	notes := md.Tracks["Piano"]
	assert.Len(notes, 1)
	assert.InDelta(0.0, notes[0].StartTime, 1e-9)
	assert.InDelta(0.5, notes[0].EndTime, 1e-9)
	assert.Equal(uint8(60), notes[0].Pitch)
	assert.Equal(uint8(100), notes[0].Velocity)
	assert.Equal(uint8(0), notes[0].Channel)
	assert.Equal("Piano", notes[0].Track)
}

func TestExtractDefaultsWithoutTempoAndName(t *testing.T) {
	track := smf.Track{
		ev(0, gomidi.NoteOn(0, 60, 80)),
		ev(480, gomidi.NoteOff(0, 60)),
	}
	track.Close(0)

	md, err := Extract(makeSMF(480, track), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	// no set_tempo means 500000 us per beat, i.e. 120 BPM
	assert.InDelta(120.0, md.Tempo, 1e-9)
	assert.Equal([]string{"Track_0"}, md.Order)
	assert.Len(md.Tracks["Track_0"], 1)
	assert.Empty(md.Metadata.RawTempoEvents)
}

func TestExtractFirstTempoWins(t *testing.T) {
	track := smf.Track{
		ev(0, smf.MetaTempo(60)),
		ev(100, smf.MetaTempo(240)),
		ev(0, gomidi.NoteOn(0, 60, 80)),
		ev(480, gomidi.NoteOff(0, 60)),
	}
	track.Close(0)

	md, err := Extract(makeSMF(480, track), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	assert.InDelta(60.0, md.Tempo, 1e-9)
	assert.Len(md.Metadata.RawTempoEvents, 1)

	// 480 ticks at 60 BPM is a full second
	notes := md.Tracks["Track_0"]
	assert.Len(notes, 1)
	assert.InDelta(1.0, notes[0].Duration(), 1e-9)
}

func TestExtractDropsShortNotes(t *testing.T) {
	// 1 tick at 120 BPM / 480 tpq is ~1 ms, under the 5 ms floor
	track := smf.Track{
		ev(0, smf.MetaTempo(120)),
		ev(0, gomidi.NoteOn(0, 60, 100)),
		ev(1, gomidi.NoteOff(0, 60)),
		ev(0, gomidi.NoteOn(0, 62, 100)),
		ev(480, gomidi.NoteOff(0, 62)),
	}
	track.Close(0)

	md, err := Extract(makeSMF(480, track), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	notes := md.Tracks["Track_0"]
	assert.Len(notes, 1)
	assert.Equal(uint8(62), notes[0].Pitch)
	for _, n := range notes {
		assert.Greater(n.EndTime, n.StartTime+0.005)
	}
}

func TestExtractRetriggerSilentlyDropsPendingNote(t *testing.T) {
	track := smf.Track{
		ev(0, smf.MetaTempo(120)),
		ev(0, gomidi.NoteOn(0, 60, 100)),
		ev(240, gomidi.NoteOn(0, 60, 90)), // retrigger same key
		ev(240, gomidi.NoteOff(0, 60)),
	}
	track.Close(0)

	md, err := Extract(makeSMF(480, track), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	notes := md.Tracks["Track_0"]
	// only the retriggered note survives; the first one is never emitted
	assert.Len(notes, 1)
	assert.Equal(uint8(90), notes[0].Velocity)
	assert.InDelta(0.25, notes[0].StartTime, 1e-9)
	assert.InDelta(0.5, notes[0].EndTime, 1e-9)
}

func TestExtractDropsUnclosedNotes(t *testing.T) {
	track := smf.Track{
		ev(0, smf.MetaTempo(120)),
		ev(0, gomidi.NoteOn(0, 60, 100)),
		ev(480, gomidi.NoteOff(0, 60)),
		ev(0, gomidi.NoteOn(0, 64, 100)),
		// no note-off for 64
	}
	track.Close(0)

	md, err := Extract(makeSMF(480, track), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	notes := md.Tracks["Track_0"]
	assert.Len(notes, 1)
	assert.Equal(uint8(60), notes[0].Pitch)
}

func TestExtractNoteOnZeroVelocityActsAsNoteOff(t *testing.T) {
	track := smf.Track{
		ev(0, smf.MetaTempo(120)),
		ev(0, gomidi.NoteOn(0, 60, 100)),
		ev(480, gomidi.NoteOn(0, 60, 0)),
	}
	track.Close(0)

	md, err := Extract(makeSMF(480, track), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	notes := md.Tracks["Track_0"]
	assert.Len(notes, 1)
	assert.InDelta(0.5, notes[0].EndTime, 1e-9)
}

func TestExtractSeparateChannelsDoNotCollide(t *testing.T) {
	track := smf.Track{
		ev(0, smf.MetaTempo(120)),
		ev(0, gomidi.NoteOn(0, 60, 100)),
		ev(0, gomidi.NoteOn(1, 60, 100)),
		ev(480, gomidi.NoteOff(0, 60)),
		ev(480, gomidi.NoteOff(1, 60)),
	}
	track.Close(0)

	md, err := Extract(makeSMF(480, track), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	notes := md.Tracks["Track_0"]
	assert.Len(notes, 2)
	assert.InDelta(0.5, notes[0].Duration(), 1e-9)
	assert.InDelta(1.0, notes[1].Duration(), 1e-9)
}

func TestExtractDuplicateTrackNameLastWins(t *testing.T) {
	first := smf.Track{
		ev(0, smf.MetaTrackSequenceName("Lead")),
		ev(0, smf.MetaTempo(120)),
		ev(0, gomidi.NoteOn(0, 60, 100)),
		ev(480, gomidi.NoteOff(0, 60)),
	}
	first.Close(0)
	second := smf.Track{
		ev(0, smf.MetaTrackSequenceName("Lead")),
		ev(0, gomidi.NoteOn(0, 72, 100)),
		ev(960, gomidi.NoteOff(0, 72)),
	}
	second.Close(0)

	md, err := Extract(makeSMF(480, first, second), "test.mid")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"Lead"}, md.Order)
	notes := md.Tracks["Lead"]
	assert.Len(notes, 1)
	assert.Equal(uint8(72), notes[0].Pitch)
}

func TestReadMidiBytesMalformed(t *testing.T) {
	_, err := ReadMidiBytes([]byte("definitely not midi"), "bad.mid")

	assert := assert.New(t)
	assert.Error(err)
	var perr *ParseError
	assert.True(errors.As(err, &perr))
	assert.Equal("bad.mid", perr.Path)
}
