// Package artwork draws placeholder source icons for projects that have
// no artwork yet, so the rest of the pipeline has something to convert.
package artwork

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
)

// DefaultSize is the edge length of a generated placeholder, large enough
// to downsample cleanly to every target resolution.
const DefaultSize = 512

// Generate draws a size×size placeholder icon and writes it to path as a
// PNG: a purple-to-blue gradient with an ascending bar motif.
func Generate(path string, size int) error {
	if size <= 0 {
		return fmt.Errorf("artwork size must be positive, got %d", size)
	}

	dc := gg.NewContext(size, size)
	s := float64(size)

	// Background gradient, purple to blue.
	grad := gg.NewLinearGradient(0, 0, 0, s)
	grad.AddColorStop(0, color.RGBA{R: 124, G: 58, B: 237, A: 255})
	grad.AddColorStop(1, color.RGBA{R: 59, G: 130, B: 246, A: 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dc.SetColor(white)

	// Four ascending bars along the bottom.
	barW := s * 0.12
	gap := s * 0.04
	baseY := s * 0.80
	startX := s * 0.20
	for i, h := range []float64{0.23, 0.35, 0.47, 0.59} {
		x := startX + float64(i)*(barW+gap)
		dc.DrawRectangle(x, baseY-s*h, barW, s*h)
		dc.Fill()
	}

	// Ring accent in the upper half.
	dc.SetLineWidth(s * 0.016)
	dc.DrawCircle(s*0.5, s*0.29, s*0.15)
	dc.Stroke()

	return dc.SavePNG(path)
}
