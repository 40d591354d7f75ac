package filters

import (
	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// BlockScramble shuffles pixels locally within small tiles. The multiset
// of pixel values inside each tile is unchanged; only spatial placement
// moves. Transparent pixels participate like any other so alpha travels
// with its pixel.
type BlockScramble struct{}

// NewBlockScramble creates a new block scramble pass
func NewBlockScramble() *BlockScramble {
	return &BlockScramble{}
}

func (f *BlockScramble) GetName() string {
	return "block_scramble"
}

func (f *BlockScramble) GetDescription() string {
	return "Fisher-Yates shuffle of pixels within fixed tiles"
}

func (f *BlockScramble) Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) {
	blockSize := strength/10 + 2
	if blockSize < 2 {
		blockSize = 2
	}
	if blockSize > 6 {
		blockSize = 6
	}

	pix := buf.Pix()
	width := buf.Width()
	height := buf.Height()

	for by := 0; by < height; by += blockSize {
		for bx := 0; bx < width; bx += blockSize {
			f.scrambleTile(buf, pix, bx, by, blockSize, gen)
		}
	}
}

// scrambleTile shuffles one tile; edge tiles may be smaller than
// blockSize×blockSize.
func (f *BlockScramble) scrambleTile(buf *pixel.PixelBuffer, pix []uint8, bx, by, blockSize int, gen *pixel.Generator) {
	width := buf.Width()
	height := buf.Height()

	endX := bx + blockSize
	if endX > width {
		endX = width
	}
	endY := by + blockSize
	if endY > height {
		endY = height
	}

	// Collect tile pixels in traversal order.
	samples := make([][pixel.Stride]uint8, 0, blockSize*blockSize)
	for y := by; y < endY; y++ {
		for x := bx; x < endX; x++ {
			i := buf.Index(x, y)
			var s [pixel.Stride]uint8
			copy(s[:], pix[i:i+pixel.Stride])
			samples = append(samples, s)
		}
	}

	// Fisher-Yates over the collected order.
	for i := len(samples) - 1; i >= 1; i-- {
		j := gen.NextInt(0, i)
		samples[i], samples[j] = samples[j], samples[i]
	}

	// Write back to the same tile coordinates in traversal order.
	n := 0
	for y := by; y < endY; y++ {
		for x := bx; x < endX; x++ {
			i := buf.Index(x, y)
			copy(pix[i:i+pixel.Stride], samples[n][:])
			n++
		}
	}
}
