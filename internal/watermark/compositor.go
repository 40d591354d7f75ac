// Watermark compositing onto protected output
package watermark

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// Options positions and shapes the watermark in image pixel space. Any
// mapping from an interactive view (pan/zoom) to these coordinates is
// the caller's concern.
type Options struct {
	// X, Y is the top-left destination position. May be negative or
	// beyond the base bounds; the overlap is clipped.
	X, Y int
	// Width, Height is the destination size. Zero means the watermark's
	// own size.
	Width, Height int
	// Opacity in [0,1] multiplies the watermark's own alpha.
	Opacity float64
}

// Composite alpha-blends the watermark onto the base buffer in place,
// resizing the watermark to the destination size when needed.
func Composite(base, mark *pixel.PixelBuffer, opts Options) error {
	if base == nil || mark == nil {
		return fmt.Errorf("nil buffer")
	}
	if err := base.Validate(); err != nil {
		return fmt.Errorf("base: %w", err)
	}
	if err := mark.Validate(); err != nil {
		return fmt.Errorf("watermark: %w", err)
	}
	if opts.Opacity < 0 || opts.Opacity > 1 {
		return fmt.Errorf("opacity %v out of range [0,1]", opts.Opacity)
	}
	if opts.Width < 0 || opts.Height < 0 {
		return fmt.Errorf("invalid destination size: %dx%d", opts.Width, opts.Height)
	}

	dstW := opts.Width
	if dstW == 0 {
		dstW = mark.Width()
	}
	dstH := opts.Height
	if dstH == 0 {
		dstH = mark.Height()
	}
	if dstW != mark.Width() || dstH != mark.Height() {
		mark = resize(mark, dstW, dstH)
	}

	// Clip the watermark rectangle to the base bounds.
	startX := maxInt(0, opts.X)
	startY := maxInt(0, opts.Y)
	endX := minInt(base.Width(), opts.X+dstW)
	endY := minInt(base.Height(), opts.Y+dstH)
	if startX >= endX || startY >= endY {
		return nil
	}

	basePix := base.Pix()
	markPix := mark.Pix()
	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			si := mark.Index(x-opts.X, y-opts.Y)
			di := base.Index(x, y)

			ma := float64(markPix[si+3]) / 255 * opts.Opacity
			if ma <= 0 {
				continue
			}

			for c := 0; c < 3; c++ {
				src := float64(markPix[si+c])
				dst := float64(basePix[di+c])
				basePix[di+c] = clampByte(int(src*ma + dst*(1-ma)))
			}
			outA := float64(markPix[si+3])*opts.Opacity + float64(basePix[di+3])*(1-ma)
			basePix[di+3] = clampByte(int(outA))
		}
	}
	return nil
}

// resize scales the watermark to w×h with a Catmull-Rom kernel. The
// buffer holds non-premultiplied samples, matching image.NRGBA exactly.
func resize(src *pixel.PixelBuffer, w, h int) *pixel.PixelBuffer {
	srcImg := image.NewNRGBA(image.Rect(0, 0, src.Width(), src.Height()))
	copy(srcImg.Pix, src.Pix())

	dstImg := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), xdraw.Src, nil)

	// Dimensions were validated by the caller, so this cannot fail.
	out, _ := pixel.FromBytes(w, h, dstImg.Pix)
	return out
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
