package filters

import (
	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// BalancedNoise perturbs per-pixel luminance while approximately
// preserving hue: the noise is applied to the luminance estimate and the
// color channels are rescaled by the resulting ratio.
type BalancedNoise struct{}

// NewBalancedNoise creates a new balanced noise pass
func NewBalancedNoise() *BalancedNoise {
	return &BalancedNoise{}
}

func (f *BalancedNoise) GetName() string {
	return "balanced_noise"
}

func (f *BalancedNoise) GetDescription() string {
	return "Luminance noise with approximate hue preservation"
}

func (f *BalancedNoise) Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) {
	pix := buf.Pix()
	for i := 0; i < len(pix); i += pixel.Stride {
		// Transparent pixels are skipped entirely and consume no draws.
		if pix[i+3] == 0 {
			continue
		}
		r := float64(pix[i])
		g := float64(pix[i+1])
		b := float64(pix[i+2])
		lum := 0.299*r + 0.587*g + 0.114*b

		n := gen.NextInt(-strength, strength)
		shifted := lum + float64(n)
		if shifted < 0 {
			shifted = 0
		}
		if shifted > 255 {
			shifted = 255
		}

		ratio := 1.0
		if lum != 0 {
			ratio = shifted / lum
		}

		pix[i] = clampByte(int(r * ratio))
		pix[i+1] = clampByte(int(g * ratio))
		pix[i+2] = clampByte(int(b * ratio))
	}
}
