package filters

import (
	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// EdgeJitter displaces a sparse lattice of pixels one column to the
// right, reading from a snapshot frozen before the pass so shifts never
// compound within a single run. The strength parameter is accepted but
// has never influenced the output; that contract is kept as-is.
type EdgeJitter struct{}

// NewEdgeJitter creates a new edge jitter pass
func NewEdgeJitter() *EdgeJitter {
	return &EdgeJitter{}
}

func (f *EdgeJitter) GetName() string {
	return "edge_jitter"
}

func (f *EdgeJitter) GetDescription() string {
	return "Sparse one-pixel spatial jitter on a fixed lattice"
}

func (f *EdgeJitter) Apply(buf *pixel.PixelBuffer, strength int, gen *pixel.Generator) {
	src := buf.Clone()
	pix := buf.Pix()
	width := buf.Width()
	height := buf.Height()

	// The outer one-pixel border is never a jitter source.
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if (x+y)%4 != 0 {
				continue
			}
			si := src.Index(x, y)
			di := buf.Index(x+1, y)
			copy(pix[di:di+pixel.Stride], src.Pix()[si:si+pixel.Stride])
		}
	}
}
