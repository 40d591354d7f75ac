package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

func TestAdversarialNoiseFlatGolden(t *testing.T) {
	buf := flatBuffer(t, 8, 8, 100, 100, 100, 255)
	NewAdversarialNoise().Apply(buf, 10, pixel.NewGenerator(1))

	// On a flat image the variance stays low everywhere, pinning the
	// multiplier at 0.2: grid pixels drop by 1 per channel, checkerboard
	// pixels in even tiles shift red up (truncated to 0) and green down.
	want := []uint8{
		100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255,
		100, 100, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255, 99, 99, 99, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255,
		100, 100, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255, 99, 99, 99, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255,
		100, 100, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255, 99, 99, 99, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255,
		100, 100, 100, 255, 99, 99, 99, 255, 99, 99, 99, 255, 99, 99, 99, 255, 99, 99, 99, 255, 99, 99, 99, 255, 99, 99, 99, 255, 99, 99, 99, 255,
		100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 99, 99, 99, 255, 100, 99, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255,
		100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 99, 99, 99, 255, 100, 99, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255,
		100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 100, 100, 100, 255, 99, 99, 99, 255, 100, 99, 100, 255, 100, 99, 100, 255, 100, 99, 100, 255,
	}
	assert.Equal(t, want, buf.Pix())
}

func TestAdversarialNoiseFirstRowAndColumnUntouched(t *testing.T) {
	buf := flatBuffer(t, 6, 6, 200, 150, 100, 255)
	NewAdversarialNoise().Apply(buf, 50, pixel.NewGenerator(1))

	pix := buf.Pix()
	for x := 0; x < 6; x++ {
		i := buf.Index(x, 0)
		assert.Equal(t, []uint8{200, 150, 100, 255}, pix[i:i+4], "top row pixel %d", x)
	}
	for y := 0; y < 6; y++ {
		i := buf.Index(0, y)
		assert.Equal(t, []uint8{200, 150, 100, 255}, pix[i:i+4], "left column pixel %d", y)
	}
}

func TestAdversarialNoiseConsumesNoDraws(t *testing.T) {
	buf := flatBuffer(t, 8, 8, 120, 120, 120, 255)
	gen := pixel.NewGenerator(17)
	NewAdversarialNoise().Apply(buf, 20, gen)

	fresh := pixel.NewGenerator(17)
	assert.Equal(t, fresh.NextInt(0, 1000), gen.NextInt(0, 1000))
}

func TestAdversarialNoiseSkipsTransparentPixels(t *testing.T) {
	buf := flatBuffer(t, 8, 8, 120, 120, 120, 0)
	NewAdversarialNoise().Apply(buf, 50, pixel.NewGenerator(1))
	assert.Equal(t, flatBuffer(t, 8, 8, 120, 120, 120, 0).Pix(), buf.Pix())
}

func TestAdversarialNoisePreservesAlpha(t *testing.T) {
	buf := flatBuffer(t, 8, 8, 50, 200, 30, 255)
	NewAdversarialNoise().Apply(buf, 50, pixel.NewGenerator(1))
	for i := 3; i < len(buf.Pix()); i += pixel.Stride {
		assert.Equal(t, uint8(255), buf.Pix()[i])
	}
}
