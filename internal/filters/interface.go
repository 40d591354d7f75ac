// Protection pass system using a shared filter registry
package filters

import (
	"fmt"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// Filter defines the interface for a single protection pass. Apply
// mutates the buffer in place; the buffer is validated by the pipeline
// before any pass runs, so a pass itself cannot fail. Passes that need a
// frozen pre-pass state take their own snapshot via Clone.
type Filter interface {
	Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator)
	GetName() string
	GetDescription() string
}

var registry = make(map[string]Filter)

func Register(name string, filter Filter) {
	registry[name] = filter
}

func Get(name string) (Filter, bool) {
	filter, exists := registry[name]
	return filter, exists
}

func IsValidFilter(name string) bool {
	_, exists := registry[name]
	return exists
}

func Apply(name string, buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) error {
	filter, exists := registry[name]
	if !exists {
		return fmt.Errorf("filter not found: %s", name)
	}
	filter.Apply(buf, strength, gen)
	return nil
}

func GetAllFilters() map[string]Filter {
	result := make(map[string]Filter)
	for name, filter := range registry {
		result[name] = filter
	}
	return result
}

func init() {
	Register("balanced_noise", NewBalancedNoise())
	Register("edge_jitter", NewEdgeJitter())
	Register("texture_noise", NewTextureNoise())
	Register("color_shift", NewColorShift())
	Register("distortion", NewDistortion())
	Register("adversarial_noise", NewAdversarialNoise())
	Register("sine_interference", NewSineInterference())
	Register("block_scramble", NewBlockScramble())
}

// clampByte saturates v into the valid channel range.
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
