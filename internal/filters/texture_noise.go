package filters

import (
	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// TextureNoise adds a single noise value identically to R, G and B on a
// sparse diagonal lattice, roughening flat regions without hue drift.
type TextureNoise struct{}

// NewTextureNoise creates a new texture noise pass
func NewTextureNoise() *TextureNoise {
	return &TextureNoise{}
}

func (f *TextureNoise) GetName() string {
	return "texture_noise"
}

func (f *TextureNoise) GetDescription() string {
	return "Gray noise on every third diagonal"
}

func (f *TextureNoise) Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) {
	pix := buf.Pix()
	width := buf.Width()
	height := buf.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%3 != 0 {
				continue
			}
			i := buf.Index(x, y)
			if pix[i+3] == 0 {
				continue
			}
			n := gen.NextInt(-strength, strength)
			pix[i] = clampByte(int(pix[i]) + n)
			pix[i+1] = clampByte(int(pix[i+1]) + n)
			pix[i+2] = clampByte(int(pix[i+2]) + n)
		}
	}
}
