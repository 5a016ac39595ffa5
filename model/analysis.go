package model

// IOIBin is one bucket of the inter-onset-interval histogram. Interval
// is the bin edge in seconds (multiples of 0.05).
type IOIBin struct {
	Interval float64 `json:"interval"`
	Count    int     `json:"count"`
}

// RhythmPatterns holds the rhythm statistics for one file.
type RhythmPatterns struct {
	IOIHist        []IOIBin `json:"ioi_hist"`
	BeatDensity    []int    `json:"beat_density"`
	SecondsPerBeat float64  `json:"seconds_per_beat"`
}

// Section is a maximal run of equal chord labels. Bin indices are
// inclusive and refer to positions in the chord progression.
type Section struct {
	Chord    string `json:"chord"`
	StartBin int    `json:"start_bin"`
	EndBin   int    `json:"end_bin"`
}

// RhythmSummary is the structure-level rhythm rollup.
type RhythmSummary struct {
	AvgBeatDensity float64 `json:"avg_beat_density"`
}

// Structure is the run-length segmentation of the chord progression.
type Structure struct {
	Sections      []Section     `json:"sections"`
	ChordSequence []string      `json:"chord_sequence"`
	RhythmSummary RhythmSummary `json:"rhythm_summary"`
}

// MusicAnalysis is everything derived from one MidiData.
type MusicAnalysis struct {
	Key              string
	ChordProgression []string
	RhythmPatterns   RhythmPatterns
	Structure        Structure
}

// TrackMapping assigns each track name a timbre category.
type TrackMapping struct {
	Mapping map[string]string
}
