package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// newBuffer builds a buffer from literal RGBA bytes, failing the test on
// bad dimensions.
func newBuffer(t *testing.T, width, height int, data []uint8) *pixel.PixelBuffer {
	t.Helper()
	buf, err := pixel.FromBytes(width, height, data)
	require.NoError(t, err)
	return buf
}

// flatBuffer builds a buffer with every pixel set to the same RGBA value.
func flatBuffer(t *testing.T, width, height int, r, g, b, a uint8) *pixel.PixelBuffer {
	t.Helper()
	data := make([]uint8, width*height*pixel.Stride)
	for i := 0; i < len(data); i += pixel.Stride {
		data[i], data[i+1], data[i+2], data[i+3] = r, g, b, a
	}
	return newBuffer(t, width, height, data)
}

func TestRegistryContents(t *testing.T) {
	names := []string{
		"balanced_noise",
		"edge_jitter",
		"texture_noise",
		"color_shift",
		"distortion",
		"adversarial_noise",
		"sine_interference",
		"block_scramble",
	}

	all := GetAllFilters()
	assert.Len(t, all, len(names))
	for _, name := range names {
		filter, exists := Get(name)
		require.True(t, exists, "filter %s not registered", name)
		assert.Equal(t, name, filter.GetName())
		assert.NotEmpty(t, filter.GetDescription())
		assert.True(t, IsValidFilter(name))
	}

	_, exists := Get("gaussian_blur")
	assert.False(t, exists)
	assert.False(t, IsValidFilter("gaussian_blur"))
}

func TestApplyUnknownFilter(t *testing.T) {
	buf := flatBuffer(t, 2, 2, 10, 20, 30, 255)
	err := Apply("no_such_filter", buf, 10, pixel.NewGenerator(1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_filter")
}

func TestApplyDispatches(t *testing.T) {
	buf := flatBuffer(t, 4, 4, 100, 100, 100, 255)
	err := Apply("balanced_noise", buf, 10, pixel.NewGenerator(1))
	require.NoError(t, err)
}

// Every registered pass must be a pure function of (input, strength, seed).
func TestAllFiltersDeterministic(t *testing.T) {
	for name, filter := range GetAllFilters() {
		t.Run(name, func(t *testing.T) {
			data := make([]uint8, 8*8*pixel.Stride)
			for i := range data {
				data[i] = uint8((i*37 + 11) % 256)
			}
			// Force full opacity so every pass touches every pixel.
			for i := 3; i < len(data); i += pixel.Stride {
				data[i] = 255
			}

			a := newBuffer(t, 8, 8, data)
			b := newBuffer(t, 8, 8, data)
			filter.Apply(a, 25, pixel.NewGenerator(77))
			filter.Apply(b, 25, pixel.NewGenerator(77))
			assert.Equal(t, a.Pix(), b.Pix())

			c := newBuffer(t, 8, 8, data)
			filter.Apply(c, 25, pixel.NewGenerator(78))
			assert.Equal(t, 8, c.Width())
			assert.Equal(t, 8, c.Height())
		})
	}
}
