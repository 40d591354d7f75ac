package filters

import (
	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// cellSize is the fixed grid pitch of the adversarial pattern.
const cellSize = 4

// AdversarialNoise lays a faint cell grid and checkerboard over the
// image, scaling the amplitude by local variance so the pattern hides in
// textured regions (perceptual masking). Neighbor diffs read the buffer
// being mutated, making the sweep causal and order-dependent; that
// matches the observed behavior and is kept intentionally.
type AdversarialNoise struct{}

// NewAdversarialNoise creates a new adversarial noise pass
func NewAdversarialNoise() *AdversarialNoise {
	return &AdversarialNoise{}
}

func (f *AdversarialNoise) GetName() string {
	return "adversarial_noise"
}

func (f *AdversarialNoise) GetDescription() string {
	return "Variance-masked grid and checkerboard perturbation"
}

func (f *AdversarialNoise) Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) {
	pix := buf.Pix()
	width := buf.Width()
	height := buf.Height()

	// The first row and column have no left/up neighbors and stay as-is.
	for y := 1; y < height; y++ {
		for x := 1; x < width; x++ {
			i := buf.Index(x, y)
			if pix[i+3] == 0 {
				continue
			}
			li := buf.Index(x-1, y)
			ui := buf.Index(x, y-1)

			diffL := absInt(int(pix[i])-int(pix[li])) +
				absInt(int(pix[i+1])-int(pix[li+1])) +
				absInt(int(pix[i+2])-int(pix[li+2]))
			diffU := absInt(int(pix[i])-int(pix[ui])) +
				absInt(int(pix[i+1])-int(pix[ui+1])) +
				absInt(int(pix[i+2])-int(pix[ui+2]))
			variance := float64(diffL+diffU) / 2

			multiplier := 0.2
			switch {
			case variance > 40:
				multiplier = 2.5
			case variance > 10:
				multiplier = 1.0
			}
			effective := float64(strength) * multiplier

			if x%cellSize == 0 || y%cellSize == 0 {
				pix[i] = clampByte(int(float64(pix[i]) - 0.5*effective))
				pix[i+1] = clampByte(int(float64(pix[i+1]) - 0.5*effective))
				pix[i+2] = clampByte(int(float64(pix[i+2]) - 0.5*effective))
			} else if (x/cellSize+y/cellSize)%2 == 0 {
				pix[i] = clampByte(int(float64(pix[i]) + 0.4*effective))
				pix[i+1] = clampByte(int(float64(pix[i+1]) - 0.4*effective))
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
