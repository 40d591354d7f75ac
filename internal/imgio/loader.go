// Image loading and saving boundary adapter
package imgio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// Loader handles image file operations. It converts between on-disk
// formats and the RGBA pixel buffers the protection core works on; the
// core itself never touches files or format conversion.
type Loader struct {
	logger *logrus.Logger
}

func NewLoader(logger *logrus.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads an image file into an RGBA pixel buffer. Alpha is
// preserved when the file carries it; gray and BGR inputs are expanded
// to fully opaque RGBA.
func (l *Loader) Load(path string) (*pixel.PixelBuffer, error) {
	l.logger.WithField("path", path).Debug("Loading image")

	if !l.isSupportedFormat(path) {
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}

	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	if mat.Empty() {
		return nil, fmt.Errorf("failed to load image: %s", path)
	}
	defer mat.Close()

	rgba := gocv.NewMat()
	defer rgba.Close()
	switch mat.Channels() {
	case 4:
		gocv.CvtColor(mat, &rgba, gocv.ColorBGRAToRGBA)
	case 3:
		gocv.CvtColor(mat, &rgba, gocv.ColorBGRToRGBA)
	case 1:
		bgr := gocv.NewMat()
		gocv.CvtColor(mat, &bgr, gocv.ColorGrayToBGR)
		gocv.CvtColor(bgr, &rgba, gocv.ColorBGRToRGBA)
		bgr.Close()
	default:
		return nil, fmt.Errorf("unsupported number of channels: %d", mat.Channels())
	}

	buf, err := pixel.FromBytes(rgba.Cols(), rgba.Rows(), rgba.ToBytes())
	if err != nil {
		return nil, fmt.Errorf("invalid decoded image: %w", err)
	}

	l.logger.WithFields(logrus.Fields{
		"path":     path,
		"width":    buf.Width(),
		"height":   buf.Height(),
		"channels": mat.Channels(),
	}).Info("Image loaded successfully")

	return buf, nil
}

// Save writes a pixel buffer to disk. JPEG targets drop alpha; other
// formats keep the full RGBA samples.
func (l *Loader) Save(buf *pixel.PixelBuffer, path string) error {
	l.logger.WithField("path", path).Debug("Saving image")

	if buf == nil {
		return fmt.Errorf("cannot save nil buffer")
	}
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("cannot save invalid buffer: %w", err)
	}
	if !l.isSupportedFormat(path) {
		return fmt.Errorf("unsupported image format: %s", path)
	}

	rgba, err := gocv.NewMatFromBytes(buf.Height(), buf.Width(), gocv.MatTypeCV8UC4, buf.Pix())
	if err != nil {
		return fmt.Errorf("failed to build image matrix: %w", err)
	}
	defer rgba.Close()

	out := gocv.NewMat()
	defer out.Close()
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".jpg" || ext == ".jpeg" {
		gocv.CvtColor(rgba, &out, gocv.ColorRGBAToBGR)
	} else {
		// RGBA→BGRA and BGRA→RGBA are the same channel swap.
		gocv.CvtColor(rgba, &out, gocv.ColorBGRAToRGBA)
	}

	if ok := gocv.IMWrite(path, out); !ok {
		return fmt.Errorf("failed to save image: %s", path)
	}

	l.logger.WithFields(logrus.Fields{
		"path":   path,
		"width":  buf.Width(),
		"height": buf.Height(),
	}).Info("Image saved successfully")

	return nil
}

func (l *Loader) isSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"} {
		if ext == format {
			return true
		}
	}
	return false
}

func (l *Loader) GetSupportedFormats() []string {
	return []string{"JPEG", "PNG", "TIFF", "BMP"}
}
