package filters

import (
	"math"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// Distortion warps the image with a sinusoidal displacement field. Every
// destination pixel is copied whole (all four channels) from a clamped
// source coordinate in a snapshot frozen before the pass, so the output
// contains only pixels that existed in the input and no feedback occurs.
type Distortion struct{}

// NewDistortion creates a new geometric distortion pass
func NewDistortion() *Distortion {
	return &Distortion{}
}

func (f *Distortion) GetName() string {
	return "distortion"
}

func (f *Distortion) GetDescription() string {
	return "Sinusoidal geometric warp sampled from a frozen snapshot"
}

func (f *Distortion) Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) {
	src := buf.Clone()
	pix := buf.Pix()
	width := buf.Width()
	height := buf.Height()

	ampX := float64(strength) * 0.5
	ampY := float64(strength) * 0.5
	freqX := 0.05 + gen.NextFloat()*0.1
	freqY := 0.05 + gen.NextFloat()*0.1
	phaseX := gen.NextFloat() * 10
	phaseY := gen.NextFloat() * 10

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offX := ampX * math.Sin(freqX*float64(y)+phaseX)
			offY := ampY * math.Cos(freqY*float64(x)+phaseY)

			sx := x + int(math.Floor(offX))
			sy := y + int(math.Floor(offY))
			if sx < 0 {
				sx = 0
			}
			if sx > width-1 {
				sx = width - 1
			}
			if sy < 0 {
				sy = 0
			}
			if sy > height-1 {
				sy = height - 1
			}

			si := src.Index(sx, sy)
			di := buf.Index(x, y)
			copy(pix[di:di+pixel.Stride], src.Pix()[si:si+pixel.Stride])
		}
	}
}
