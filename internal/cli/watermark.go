package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/imgio"
	"github.com/monumei/GB-Eater-Watermark-Eater/internal/watermark"
)

// NewWatermarkCmd creates the watermark cobra command.
func NewWatermarkCmd(ctx context.Context, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watermark",
		Short: "composite a watermark onto an image",
		Long:  "Alpha-blends a watermark image onto a base image at the given position and scale, modulating the watermark's alpha by the opacity.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			markPath, _ := cmd.Flags().GetString("mark")
			out, _ := cmd.Flags().GetString("out")
			x, _ := cmd.Flags().GetInt("x")
			y, _ := cmd.Flags().GetInt("y")
			scale, _ := cmd.Flags().GetFloat64("scale")
			opacity, _ := cmd.Flags().GetFloat64("opacity")

			if in == "" || markPath == "" || out == "" {
				return fmt.Errorf("--in, --mark and --out are required")
			}
			if scale <= 0 {
				return fmt.Errorf("scale must be positive, got %v", scale)
			}

			loader := imgio.NewLoader(logger)
			base, err := loader.Load(in)
			if err != nil {
				return fmt.Errorf("load base: %w", err)
			}
			mark, err := loader.Load(markPath)
			if err != nil {
				return fmt.Errorf("load watermark: %w", err)
			}

			opts := watermark.Options{
				X:       x,
				Y:       y,
				Width:   int(math.Round(float64(mark.Width()) * scale)),
				Height:  int(math.Round(float64(mark.Height()) * scale)),
				Opacity: opacity,
			}
			if err := watermark.Composite(base, mark, opts); err != nil {
				return fmt.Errorf("composite: %w", err)
			}

			if err := loader.Save(base, out); err != nil {
				return fmt.Errorf("save: %w", err)
			}

			logger.WithFields(logrus.Fields{
				"out":     out,
				"x":       x,
				"y":       y,
				"scale":   scale,
				"opacity": opacity,
			}).Info("Watermark applied")
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "base image path")
	pf.String("mark", "", "watermark image path")
	pf.StringP("out", "o", "", "output image path")
	pf.Int("x", 0, "watermark left position in image pixels")
	pf.Int("y", 0, "watermark top position in image pixels")
	pf.Float64("scale", 1.0, "watermark scale factor")
	pf.Float64("opacity", 0.5, "watermark opacity [0,1]")

	return cmd
}
