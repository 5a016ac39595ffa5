package analysis

import (
	"testing"

	"github.com/mirkit/miditect/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildStructureEmptySequence(t *testing.T) {
	got := BuildStructure(nil, model.RhythmPatterns{})

	assert := assert.New(t)
	assert.Empty(got.Sections)
	assert.Empty(got.ChordSequence)
	assert.InDelta(0.0, got.RhythmSummary.AvgBeatDensity, 1e-9)
}

func TestBuildStructureSingleRun(t *testing.T) {
	got := BuildStructure([]string{"C"}, model.RhythmPatterns{})

	assert.Equal(t, []model.Section{{Chord: "C", StartBin: 0, EndBin: 0}}, got.Sections)
}

func TestBuildStructureDeduplicatedSequence(t *testing.T) {
	got := BuildStructure([]string{"C", "G", "N", "Am"}, model.RhythmPatterns{})

	assert.Equal(t, []model.Section{
		{Chord: "C", StartBin: 0, EndBin: 0},
		{Chord: "G", StartBin: 1, EndBin: 1},
		{Chord: "N", StartBin: 2, EndBin: 2},
		{Chord: "Am", StartBin: 3, EndBin: 3},
	}, got.Sections)
}

func TestBuildStructureCollapsesRuns(t *testing.T) {
	// callers are not required to pre-deduplicate
	got := BuildStructure([]string{"C", "C", "C", "G", "G", "N"}, model.RhythmPatterns{})

	assert.Equal(t, []model.Section{
		{Chord: "C", StartBin: 0, EndBin: 2},
		{Chord: "G", StartBin: 3, EndBin: 4},
		{Chord: "N", StartBin: 5, EndBin: 5},
	}, got.Sections)
}

func TestBuildStructureAvgBeatDensity(t *testing.T) {
	rhythm := model.RhythmPatterns{BeatDensity: []int{2, 4, 0, 2}}
	got := BuildStructure([]string{"C"}, rhythm)

	assert.InDelta(t, 2.0, got.RhythmSummary.AvgBeatDensity, 1e-9)
}
