package filters

import (
	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// ColorShift applies one global offset per channel, drawn once per
// invocation, plus a fresh small jitter per channel per pixel. The
// global component tints the whole image; the jitter decorrelates
// neighboring pixels.
type ColorShift struct{}

// NewColorShift creates a new color shift pass
func NewColorShift() *ColorShift {
	return &ColorShift{}
}

func (f *ColorShift) GetName() string {
	return "color_shift"
}

func (f *ColorShift) GetDescription() string {
	return "Global per-channel offset with per-pixel jitter"
}

func (f *ColorShift) Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) {
	rShift := gen.NextInt(-strength, strength)
	gShift := gen.NextInt(-strength, strength)
	bShift := gen.NextInt(-strength, strength)
	half := strength / 2

	pix := buf.Pix()
	for i := 0; i < len(pix); i += pixel.Stride {
		if pix[i+3] == 0 {
			continue
		}
		pix[i] = clampByte(int(pix[i]) + rShift + gen.NextInt(-half, half))
		pix[i+1] = clampByte(int(pix[i+1]) + gShift + gen.NextInt(-half, half))
		pix[i+2] = clampByte(int(pix[i+2]) + bShift + gen.NextInt(-half, half))
	}
}
