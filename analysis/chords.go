package analysis

import (
	"math"
	"sort"

	"github.com/mirkit/miditect/model"
)

// ChordWindow is the fixed chord bin width in seconds. The exporter's
// timeline arithmetic depends on the same value.
const ChordWindow = 0.5

// pcCounter counts pitch classes while remembering first-seen order,
// so that frequency ties resolve toward the earlier-inserted class.
// A plain map would leave the tie-break to random iteration order.
type pcCounter struct {
	order  []int
	counts map[int]int
}

func newPCCounter() *pcCounter {
	return &pcCounter{counts: make(map[int]int)}
}

func (c *pcCounter) add(pc int) {
	if _, ok := c.counts[pc]; !ok {
		c.order = append(c.order, pc)
	}
	c.counts[pc]++
}

// topN returns up to n pitch classes by descending count; ties keep
// insertion order.
func (c *pcCounter) topN(n int) []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	sort.SliceStable(out, func(i, j int) bool {
		return c.counts[out[i]] > c.counts[out[j]]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// SegmentChords aggregates pitch classes over fixed-width time bins and
// names a chord per bin. Adjacent duplicate labels (including "N") are
// collapsed, so the result never holds two equal neighbors.
func SegmentChords(notes []model.NoteEvent, window float64) []string {
	if len(notes) == 0 {
		return nil
	}

	var endTime float64
	for _, n := range notes {
		if n.EndTime > endTime {
			endTime = n.EndTime
		}
	}
	numBins := int(math.Ceil(endTime / window))
	if numBins <= 0 {
		return nil
	}

	bins := make([]*pcCounter, numBins)
	for i := range bins {
		bins[i] = newPCCounter()
	}
	for _, n := range notes {
		startBin := int(n.StartTime / window)
		endBin := int(n.EndTime / window)
		if endBin >= numBins {
			endBin = numBins - 1
		}
		for b := startBin; b <= endBin; b++ {
			bins[b].add(int(n.Pitch % 12))
		}
	}

	var names []string
	for _, bin := range bins {
		name := "N"
		if len(bin.order) > 0 {
			top := bin.topN(3)
			sort.Ints(top)
			name = nameChordFromPCs(top)
		}
		if len(names) == 0 || names[len(names)-1] != name {
			names = append(names, name)
		}
	}
	return names
}

// nameChordFromPCs tries each candidate root in ascending pitch-class
// order: a root whose interval set covers {0,4,7} names a major triad
// (bare root letter), {0,3,7} a minor one (root + "m"). First
// satisfying root wins; no match is "N".
func nameChordFromPCs(pcs []int) string {
	if len(pcs) < 2 {
		return "N"
	}

	for _, root := range pcs {
		intervals := make(map[int]bool, len(pcs))
		for _, pc := range pcs {
			intervals[((pc-root)%12+12)%12] = true
		}
		if intervals[0] && intervals[4] && intervals[7] {
			return pitchClassNames[root]
		}
		if intervals[0] && intervals[3] && intervals[7] {
			return pitchClassNames[root] + "m"
		}
	}
	return "N"
}
