package model

// Document is the exported analysis, shaped for JSON serialization.
// Field order is fixed by the struct definitions, which keeps the
// encoded output byte-identical across runs.
type Document struct {
	Meta     DocMeta     `json:"meta"`
	Global   DocGlobal   `json:"global"`
	Tracks   []DocTrack  `json:"tracks"`
	Timeline DocTimeline `json:"timeline"`
}

type DocMeta struct {
	FilePath        string  `json:"file_path"`
	TempoBPM        float64 `json:"tempo_bpm"`
	TicksPerBeat    int     `json:"ticks_per_beat"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type DocGlobal struct {
	Key       string `json:"key"`
	NumTracks int    `json:"num_tracks"`
}

type DocNote struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Pitch    uint8   `json:"pitch"`
	Velocity uint8   `json:"velocity"`
}

type DocTrack struct {
	Name        string    `json:"name"`
	TimbreGroup string    `json:"timbre_group"`
	Notes       []DocNote `json:"notes"`
}

// DocChord is one chord span on the timeline, expanded from bin
// indices back to seconds.
type DocChord struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Name  string  `json:"name"`
}

type DocSection struct {
	Label    string  `json:"label"`
	Chord    string  `json:"chord"`
	StartBin int     `json:"start_bin"`
	EndBin   int     `json:"end_bin"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

type DocTimeline struct {
	BinSize     float64      `json:"bin_size"`
	Chords      []DocChord   `json:"chords"`
	Sections    []DocSection `json:"sections"`
	BeatDensity []int        `json:"beat_density"`
}
