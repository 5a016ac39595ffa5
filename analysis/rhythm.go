package analysis

import (
	"math"
	"sort"

	"github.com/mirkit/miditect/model"
)

// ioiBinSize is the inter-onset-interval histogram resolution in
// seconds.
const ioiBinSize = 0.05

// simultaneityGap excludes near-simultaneous onset pairs (chords) from
// the interval statistics.
const simultaneityGap = 1e-3

// AnalyzeRhythm computes inter-onset-interval statistics and per-beat
// onset density over all notes. Empty input yields empty histograms.
func AnalyzeRhythm(notes []model.NoteEvent, bpm float64) model.RhythmPatterns {
	secondsPerBeat := 0.5
	if bpm > 0 {
		secondsPerBeat = 60.0 / bpm
	}

	if len(notes) == 0 {
		return model.RhythmPatterns{SecondsPerBeat: secondsPerBeat}
	}

	onsets := make([]float64, 0, len(notes))
	for _, n := range notes {
		onsets = append(onsets, n.StartTime)
	}
	sort.Float64s(onsets)

	// histogram buckets are kept as integer indices so float keys never
	// enter a map
	hist := make(map[int]int)
	for i := 0; i+1 < len(onsets); i++ {
		dt := onsets[i+1] - onsets[i]
		if dt <= simultaneityGap {
			continue
		}
		hist[int(math.Round(dt/ioiBinSize))]++
	}

	idxs := make([]int, 0, len(hist))
	for idx := range hist {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)

	ioiHist := make([]model.IOIBin, 0, len(idxs))
	for _, idx := range idxs {
		ioiHist = append(ioiHist, model.IOIBin{
			Interval: float64(idx) * ioiBinSize,
			Count:    hist[idx],
		})
	}

	maxOnset := onsets[len(onsets)-1]
	numBeats := int(math.Ceil(maxOnset / secondsPerBeat))
	beatDensity := make([]int, numBeats)
	for _, t := range onsets {
		idx := int(t / secondsPerBeat)
		if idx >= 0 && idx < numBeats {
			beatDensity[idx]++
		}
	}

	return model.RhythmPatterns{
		IOIHist:        ioiHist,
		BeatDensity:    beatDensity,
		SecondsPerBeat: secondsPerBeat,
	}
}
