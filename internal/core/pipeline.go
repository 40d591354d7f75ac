// Pipeline composition: protection modes mapped to ordered filter steps
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/filters"
	"github.com/monumei/GB-Eater-Watermark-Eater/internal/pixel"
)

// MaxStrength is the upper bound of the caller-facing strength control.
const MaxStrength = 50

// ProtectionMode selects which ordered list of filter steps runs.
type ProtectionMode int

const (
	ModeSoft ProtectionMode = iota
	ModeBalanced
	ModeStrong
	ModeAIPoison
)

func (m ProtectionMode) String() string {
	switch m {
	case ModeSoft:
		return "soft"
	case ModeBalanced:
		return "balanced"
	case ModeStrong:
		return "strong"
	case ModeAIPoison:
		return "aipoison"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode resolves a mode name or numeric value.
func ParseMode(s string) (ProtectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soft", "0":
		return ModeSoft, nil
	case "balanced", "1":
		return ModeBalanced, nil
	case "strong", "2":
		return ModeStrong, nil
	case "aipoison", "ai-poison", "3":
		return ModeAIPoison, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, s)
}

// AllModes returns the modes in their numeric order.
func AllModes() []ProtectionMode {
	return []ProtectionMode{ModeSoft, ModeBalanced, ModeStrong, ModeAIPoison}
}

// Step pairs a filter name with the expression scaling the caller
// strength for that pass. Steps are data; the executor never branches on
// mode beyond this table.
type Step struct {
	Filter string
	Expr   string
	Scale  func(strength int) int
}

// modeSteps is the canonical mode table. Order is load-bearing: several
// passes read the buffer state left by the previous pass.
var modeSteps = map[ProtectionMode][]Step{
	ModeSoft: {
		{Filter: "balanced_noise", Expr: "strength/2", Scale: func(s int) int { return s / 2 }},
		{Filter: "color_shift", Expr: "strength/4", Scale: func(s int) int { return s / 4 }},
	},
	ModeBalanced: {
		{Filter: "balanced_noise", Expr: "strength", Scale: func(s int) int { return s }},
		{Filter: "edge_jitter", Expr: "strength/2", Scale: func(s int) int { return s / 2 }},
		{Filter: "adversarial_noise", Expr: "strength/3", Scale: func(s int) int { return s / 3 }},
	},
	ModeStrong: {
		{Filter: "balanced_noise", Expr: "strength", Scale: func(s int) int { return s }},
		{Filter: "edge_jitter", Expr: "strength", Scale: func(s int) int { return s }},
		{Filter: "texture_noise", Expr: "strength/2", Scale: func(s int) int { return s / 2 }},
		{Filter: "color_shift", Expr: "strength/2", Scale: func(s int) int { return s / 2 }},
		{Filter: "distortion", Expr: "strength/5", Scale: func(s int) int { return s / 5 }},
	},
	ModeAIPoison: {
		{Filter: "sine_interference", Expr: "strength/2", Scale: func(s int) int { return s / 2 }},
		{Filter: "distortion", Expr: "strength/2", Scale: func(s int) int { return s / 2 }},
		{Filter: "adversarial_noise", Expr: "0.8*strength", Scale: func(s int) int { return s * 4 / 5 }},
		{Filter: "color_shift", Expr: "0.8*strength", Scale: func(s int) int { return s * 4 / 5 }},
		{Filter: "block_scramble", Expr: "strength/2", Scale: func(s int) int { return s / 2 }},
	},
}

// Steps returns a copy of the step list for a mode.
func Steps(mode ProtectionMode) ([]Step, error) {
	steps, exists := modeSteps[mode]
	if !exists {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidInput, int(mode))
	}
	out := make([]Step, len(steps))
	copy(out, steps)
	return out, nil
}

// Pipeline executes the protection passes for one invocation. It owns
// nothing between calls; the buffer and generator live for a single
// Protect call.
type Pipeline struct {
	logger *logrus.Logger
}

// NewPipeline creates a pipeline with the given logger.
func NewPipeline(logger *logrus.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// Protect runs the mode's step sequence over the buffer in place. All
// validation happens before the first pass; after that the computation
// cannot fail. Two calls with identical (buffer, mode, strength, seed)
// produce byte-identical output.
func (p *Pipeline) Protect(buf *pixel.PixelBuffer, mode ProtectionMode, strength int, seed int64) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidInput)
	}
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strength < 0 || strength > MaxStrength {
		return fmt.Errorf("%w: strength %d out of range [0,%d]", ErrInvalidInput, strength, MaxStrength)
	}
	steps, err := Steps(mode)
	if err != nil {
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"mode":     mode.String(),
		"strength": strength,
		"seed":     seed,
		"width":    buf.Width(),
		"height":   buf.Height(),
		"steps":    len(steps),
	}).Info("PIPELINE: starting protection run")

	gen := pixel.NewGenerator(seed)
	for i, step := range steps {
		filter, exists := filters.Get(step.Filter)
		if !exists {
			// A missing registry entry is a programming defect, not input error.
			return fmt.Errorf("filter not found: %s", step.Filter)
		}

		start := time.Now()
		filter.Apply(buf, step.Scale(strength), gen)

		p.logger.WithFields(logrus.Fields{
			"step":        i,
			"filter":      step.Filter,
			"scaled":      step.Scale(strength),
			"expr":        step.Expr,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("PIPELINE: step completed")
	}

	p.logger.WithField("mode", mode.String()).Info("PIPELINE: protection run completed")
	return nil
}
