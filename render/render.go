// Package render draws a piano-roll image of extracted note data.
package render

import (
	"github.com/fogleman/gg"

	"github.com/mirkit/miditect/model"
)

const (
	pxPerSecond = 80.0
	rowH        = 6.0
	minWidth    = 320
)

type color struct {
	R, G, B float64
}

var colors = []color{
	{0.86, 0.27, 0.27},
	{0.27, 0.55, 0.86},
	{0.30, 0.74, 0.38},
	{0.91, 0.68, 0.23},
	{0.62, 0.40, 0.83},
	{0.25, 0.75, 0.72},
	{0.87, 0.44, 0.70},
	{0.55, 0.55, 0.55},
}

func trackColor(i int) color {
	return colors[i%len(colors)]
}

// PianoRoll renders all tracks onto one canvas, pitch 0 at the bottom,
// one color per track in extraction order.
func PianoRoll(md *model.MidiData) *gg.Context {
	width := int(md.Duration() * pxPerSecond)
	if width < minWidth {
		width = minWidth
	}
	height := int(128 * rowH)

	dc := gg.NewContext(width, height)
	dc.SetRGB(0.08, 0.08, 0.10)
	dc.Clear()

	// octave guides
	dc.SetRGBA(1, 1, 1, 0.08)
	for pitch := 0; pitch < 128; pitch += 12 {
		y := float64(127-pitch) * rowH
		dc.DrawLine(0, y, float64(width), y)
		dc.Stroke()
	}

	for i, name := range md.Order {
		c := trackColor(i)
		dc.SetRGB(c.R, c.G, c.B)
		for _, n := range md.Tracks[name] {
			x := n.StartTime * pxPerSecond
			w := n.Duration() * pxPerSecond
			if w < 1 {
				w = 1
			}
			y := float64(127-n.Pitch) * rowH
			dc.DrawRectangle(x, y, w, rowH-1)
			dc.Fill()
		}
	}

	return dc
}

// SavePianoRoll renders and writes a PNG.
func SavePianoRoll(md *model.MidiData, path string) error {
	return PianoRoll(md).SavePNG(path)
}
