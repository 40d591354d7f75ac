package filters

import (
	"math"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// interferencePeriod is the fixed diagonal wavelength in pixels.
const interferencePeriod = 20.0

// SineInterference overlays a deterministic diagonal brightness wave.
// It draws nothing from the generator; the pattern depends only on
// coordinates and strength.
type SineInterference struct{}

// NewSineInterference creates a new sine interference pass
func NewSineInterference() *SineInterference {
	return &SineInterference{}
}

func (f *SineInterference) GetName() string {
	return "sine_interference"
}

func (f *SineInterference) GetDescription() string {
	return "Deterministic diagonal wave interference"
}

func (f *SineInterference) Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) {
	pix := buf.Pix()
	width := buf.Width()
	height := buf.Height()
	amplitude := float64(strength) * 0.8

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := buf.Index(x, y)
			if pix[i+3] == 0 {
				continue
			}
			wave := int(math.Sin(float64(x+y)/interferencePeriod*2*math.Pi) * amplitude)
			pix[i] = clampByte(int(pix[i]) + wave)
			pix[i+1] = clampByte(int(pix[i+1]) + wave)
			pix[i+2] = clampByte(int(pix[i+2]) + wave)
		}
	}
}
