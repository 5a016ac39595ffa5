package analysis

import (
	"fmt"

	"github.com/mirkit/miditect/model"
	"gonum.org/v1/gonum/floats"
)

// Krumhansl-Schmuckler key profiles.
var majorTemplate = []float64{
	6.35, 2.23, 3.48, 2.33,
	4.38, 4.09, 2.52, 5.19,
	2.39, 3.66, 2.29, 2.88,
}

var minorTemplate = []float64{
	6.33, 2.68, 3.52, 5.38,
	2.60, 3.53, 2.54, 4.75,
	3.98, 2.69, 3.34, 3.17,
}

var pitchClassNames = []string{
	"C", "C#", "D", "D#", "E", "F",
	"F#", "G", "G#", "A", "A#", "B",
}

// DetectKey estimates a single global tonic and mode from all notes
// across all tracks. Empty input yields "C major".
//
// A 12-bin pitch-class histogram weighted by note duration is matched
// against both templates at all 12 rotations. Scanning goes over the
// 12 major rotations first, then the 12 minor ones, with a strictly
// greater comparison, so ties resolve toward major and toward the
// lower pitch class. That ordering is part of the output contract.
func DetectKey(notes []model.NoteEvent) string {
	if len(notes) == 0 {
		return "C major"
	}

	hist := make([]float64, 12)
	for _, n := range notes {
		dur := n.Duration()
		if dur < 0.01 {
			dur = 0.01
		}
		hist[n.Pitch%12] += dur
	}

	if total := floats.Sum(hist); total > 0 {
		floats.Scale(1/total, hist)
	}

	bestScore := -1.0
	bestTonic := "C"
	bestMode := "major"

	for i := 0; i < 12; i++ {
		if score := correlate(hist, rotate(majorTemplate, i)); score > bestScore {
			bestScore = score
			bestTonic = pitchClassNames[i]
			bestMode = "major"
		}
	}
	for i := 0; i < 12; i++ {
		if score := correlate(hist, rotate(minorTemplate, i)); score > bestScore {
			bestScore = score
			bestTonic = pitchClassNames[i]
			bestMode = "minor"
		}
	}

	return fmt.Sprintf("%v %v", bestTonic, bestMode)
}

// rotate shifts the template right by n, so index n holds the
// template's tonic weight.
func rotate(template []float64, n int) []float64 {
	out := make([]float64, 12)
	for i := range out {
		out[i] = template[((i-n)%12+12)%12]
	}
	return out
}

// correlate is the dot product of the histogram with the L1-normalized
// template.
func correlate(hist, template []float64) float64 {
	t := make([]float64, len(template))
	copy(t, template)
	if sum := floats.Sum(t); sum > 0 {
		floats.Scale(1/sum, t)
	}
	return floats.Dot(hist, t)
}
