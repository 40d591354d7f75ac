package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

func gradientBuffer(t *testing.T, width, height int) *pixel.PixelBuffer {
	t.Helper()
	data := make([]uint8, width*height*pixel.Stride)
	for i := 0; i < width*height; i++ {
		data[i*4] = uint8(i * 4)
		data[i*4+1] = uint8(i*4 + 1)
		data[i*4+2] = uint8(i*4 + 2)
		data[i*4+3] = 255
	}
	return newBuffer(t, width, height, data)
}

func TestEdgeJitterGolden(t *testing.T) {
	buf := gradientBuffer(t, 4, 4)
	NewEdgeJitter().Apply(buf, 7, pixel.NewGenerator(1))

	// Only interior pixel (2,2) satisfies (x+y)%4 == 0; it is copied one
	// pixel to the right, onto (3,2).
	want := gradientBuffer(t, 4, 4).Pix()
	copy(want[(2*4+3)*4:(2*4+3)*4+4], want[(2*4+2)*4:(2*4+2)*4+4])
	assert.Equal(t, want, buf.Pix())
}

func TestEdgeJitterIgnoresStrength(t *testing.T) {
	// The displacement pattern is fixed; strength does not participate.
	low := gradientBuffer(t, 6, 6)
	high := gradientBuffer(t, 6, 6)
	NewEdgeJitter().Apply(low, 0, pixel.NewGenerator(1))
	NewEdgeJitter().Apply(high, 50, pixel.NewGenerator(1))
	assert.Equal(t, low.Pix(), high.Pix())
}

func TestEdgeJitterConsumesNoDraws(t *testing.T) {
	buf := gradientBuffer(t, 6, 6)
	gen := pixel.NewGenerator(42)
	NewEdgeJitter().Apply(buf, 10, gen)

	fresh := pixel.NewGenerator(42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, fresh.NextInt(0, 1000), gen.NextInt(0, 1000))
	}
}

func TestEdgeJitterLeavesBorderUntouched(t *testing.T) {
	buf := gradientBuffer(t, 5, 5)
	original := buf.Clone()
	NewEdgeJitter().Apply(buf, 25, pixel.NewGenerator(7))

	for x := 0; x < 5; x++ {
		top := buf.Index(x, 0)
		bottom := buf.Index(x, 4)
		assert.Equal(t, original.Pix()[top:top+4], buf.Pix()[top:top+4])
		assert.Equal(t, original.Pix()[bottom:bottom+4], buf.Pix()[bottom:bottom+4])
	}
	for y := 0; y < 5; y++ {
		left := buf.Index(0, y)
		assert.Equal(t, original.Pix()[left:left+4], buf.Pix()[left:left+4])
	}
}
