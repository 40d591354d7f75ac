package metrics

import (
	"math"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// MSE is the mean squared error over the color channels.
type MSE struct{}

func NewMSE() *MSE { return &MSE{} }

func (m *MSE) GetName() string        { return "MSE" }
func (m *MSE) GetDescription() string { return "Mean squared error over R,G,B" }

func (m *MSE) Calculate(original, processed *pixel.PixelBuffer) (float64, error) {
	if err := checkPair(original, processed); err != nil {
		return 0, err
	}
	a := original.Pix()
	b := processed.Pix()
	var sum float64
	for i := 0; i < len(a); i += pixel.Stride {
		for c := 0; c < 3; c++ {
			d := float64(a[i+c]) - float64(b[i+c])
			sum += d * d
		}
	}
	total := float64(original.Width() * original.Height() * 3)
	return sum / total, nil
}

// PSNR is the peak signal-to-noise ratio in dB, capped at 100 for
// identical or near-identical images (a finite value instead of
// infinity).
type PSNR struct {
	mse *MSE
}

func NewPSNR() *PSNR { return &PSNR{mse: NewMSE()} }

func (p *PSNR) GetName() string        { return "PSNR" }
func (p *PSNR) GetDescription() string { return "Peak signal-to-noise ratio (dB)" }

func (p *PSNR) Calculate(original, processed *pixel.PixelBuffer) (float64, error) {
	mse, err := p.mse.Calculate(original, processed)
	if err != nil {
		return 0, err
	}
	if mse < 1e-10 {
		return 100.0, nil
	}
	psnr := 20*math.Log10(255) - 10*math.Log10(mse)
	if math.IsInf(psnr, 0) || math.IsNaN(psnr) || psnr > 100 {
		return 100.0, nil
	}
	if psnr < 0 {
		return 0.0, nil
	}
	return psnr, nil
}

// SSIM is a global structural similarity index computed on the
// luminance plane, clamped to [0,1].
type SSIM struct{}

func NewSSIM() *SSIM { return &SSIM{} }

func (s *SSIM) GetName() string        { return "SSIM" }
func (s *SSIM) GetDescription() string { return "Structural similarity on luminance" }

func (s *SSIM) Calculate(original, processed *pixel.PixelBuffer) (float64, error) {
	if err := checkPair(original, processed); err != nil {
		return 0, err
	}

	la := luminancePlane(original)
	lb := luminancePlane(processed)
	n := float64(len(la))

	var mu1, mu2 float64
	for i := range la {
		mu1 += la[i]
		mu2 += lb[i]
	}
	mu1 /= n
	mu2 /= n

	var sigma1Sq, sigma2Sq, sigma12 float64
	for i := range la {
		d1 := la[i] - mu1
		d2 := lb[i] - mu2
		sigma1Sq += d1 * d1
		sigma2Sq += d2 * d2
		sigma12 += d1 * d2
	}
	sigma1Sq /= n
	sigma2Sq /= n
	sigma12 /= n

	c1 := math.Pow(0.01*255, 2)
	c2 := math.Pow(0.03*255, 2)

	numerator := (2*mu1*mu2 + c1) * (2*sigma12 + c2)
	denominator := (mu1*mu1 + mu2*mu2 + c1) * (sigma1Sq + sigma2Sq + c2)
	if denominator == 0 || math.IsInf(denominator, 0) || math.IsNaN(denominator) {
		return 0, nil
	}

	ssim := numerator / denominator
	if math.IsInf(ssim, 0) || math.IsNaN(ssim) {
		return 0, nil
	}
	if ssim > 1 {
		ssim = 1
	}
	if ssim < 0 {
		ssim = 0
	}
	return ssim, nil
}

func luminancePlane(buf *pixel.PixelBuffer) []float64 {
	pix := buf.Pix()
	out := make([]float64, buf.Width()*buf.Height())
	for i, j := 0, 0; i < len(pix); i, j = i+pixel.Stride, j+1 {
		out[j] = 0.299*float64(pix[i]) + 0.587*float64(pix[i+1]) + 0.114*float64(pix[i+2])
	}
	return out
}
