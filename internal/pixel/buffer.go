// Core pixel buffer data structure shared by all protection passes
package pixel

import (
	"fmt"
)

const (
	// Stride is the number of bytes per pixel: R, G, B, A.
	Stride = 4

	// MaxDimension bounds accepted image sizes (prevent memory issues).
	MaxDimension = 16384
)

// PixelBuffer is a width×height grid of non-premultiplied RGBA samples.
// The sample store is contiguous, row-major, 4 bytes per pixel. Passes
// mutate the store in place; dimensions never change once created.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewPixelBuffer creates a zeroed buffer with the given dimensions.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*Stride),
	}, nil
}

// FromBytes creates a buffer from raw RGBA data. The data is copied, so
// the caller keeps ownership of its slice.
func FromBytes(width, height int, data []uint8) (*PixelBuffer, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	want := width * height * Stride
	if len(data) != want {
		return nil, fmt.Errorf("buffer length %d does not match %dx%d (want %d)", len(data), width, height, want)
	}
	pix := make([]uint8, want)
	copy(pix, data)
	return &PixelBuffer{width: width, height: height, pix: pix}, nil
}

// Width returns the width of the buffer in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Pix returns the live sample store (RGBA, 4 bytes per pixel).
func (b *PixelBuffer) Pix() []uint8 {
	return b.pix
}

// Index returns the offset of pixel (x, y) in the sample store.
func (b *PixelBuffer) Index(x, y int) int {
	return (y*b.width + x) * Stride
}

// Clone returns an independent copy. Spatial passes use a clone as the
// frozen snapshot they read from while writing into the live buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &PixelBuffer{width: b.width, height: b.height, pix: pix}
}

// Validate checks the buffer invariants. A failure here is caller error,
// not a processing failure.
func (b *PixelBuffer) Validate() error {
	if err := validateDimensions(b.width, b.height); err != nil {
		return err
	}
	if want := b.width * b.height * Stride; len(b.pix) != want {
		return fmt.Errorf("buffer length %d does not match %dx%d (want %d)", len(b.pix), b.width, b.height, want)
	}
	return nil
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("image too large: %dx%d (max: %d)", width, height, MaxDimension)
	}
	return nil
}
