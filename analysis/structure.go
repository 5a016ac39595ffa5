package analysis

import (
	"github.com/mirkit/miditect/model"

	"gonum.org/v1/gonum/stat"
)

// BuildStructure run-length-encodes a chord label sequence into
// sections and summarizes the beat density. The encoder is general: it
// does not assume the sequence is already free of adjacent duplicates.
func BuildStructure(chordSeq []string, rhythm model.RhythmPatterns) model.Structure {
	structure := model.Structure{
		ChordSequence: chordSeq,
		RhythmSummary: model.RhythmSummary{
			AvgBeatDensity: avgBeatDensity(rhythm.BeatDensity),
		},
	}

	var current string
	started := false
	startIdx := 0
	for i, ch := range chordSeq {
		if !started {
			current = ch
			startIdx = i
			started = true
		} else if ch != current {
			structure.Sections = append(structure.Sections, model.Section{
				Chord:    current,
				StartBin: startIdx,
				EndBin:   i - 1,
			})
			current = ch
			startIdx = i
		}
	}
	if started {
		structure.Sections = append(structure.Sections, model.Section{
			Chord:    current,
			StartBin: startIdx,
			EndBin:   len(chordSeq) - 1,
		})
	}

	return structure
}

func avgBeatDensity(density []int) float64 {
	if len(density) == 0 {
		return 0
	}
	vals := make([]float64, len(density))
	for i, d := range density {
		vals[i] = float64(d)
	}
	return stat.Mean(vals, nil)
}
