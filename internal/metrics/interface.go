// Quality metrics for assessing how far protection moved the image
package metrics

import (
	"fmt"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// Metric defines the interface for quality metrics.
type Metric interface {
	// Calculate computes the metric value between the original and
	// processed buffers.
	Calculate(original, processed *pixel.PixelBuffer) (float64, error)

	// GetName returns the metric name
	GetName() string

	// GetDescription returns the metric description
	GetDescription() string
}

// Evaluator manages and calculates multiple metrics.
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates a new metrics evaluator with the default metrics
// registered.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}
	e.Register("mse", NewMSE())
	e.Register("psnr", NewPSNR())
	e.Register("ssim", NewSSIM())
	return e
}

// Register registers a metric
func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// Calculate calculates a specific metric
func (e *Evaluator) Calculate(name string, original, processed *pixel.PixelBuffer) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}
	return metric.Calculate(original, processed)
}

// CalculateAll calculates all registered metrics, skipping any that fail.
func (e *Evaluator) CalculateAll(original, processed *pixel.PixelBuffer) map[string]float64 {
	results := make(map[string]float64)
	for name, metric := range e.metrics {
		if value, err := metric.Calculate(original, processed); err == nil {
			results[name] = value
		}
	}
	return results
}

// checkPair validates that two buffers are comparable.
func checkPair(original, processed *pixel.PixelBuffer) error {
	if original == nil || processed == nil {
		return fmt.Errorf("nil buffer")
	}
	if original.Width() != processed.Width() || original.Height() != processed.Height() {
		return fmt.Errorf("dimension mismatch: %dx%d vs %dx%d",
			original.Width(), original.Height(), processed.Width(), processed.Height())
	}
	return nil
}
