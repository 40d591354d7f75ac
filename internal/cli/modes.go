package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/core"
)

// NewModesCmd lists the protection modes and their step tables.
func NewModesCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "list protection modes and their filter sequences",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, mode := range core.AllModes() {
				steps, err := core.Steps(mode)
				if err != nil {
					return err
				}
				parts := make([]string, 0, len(steps))
				for _, step := range steps {
					parts = append(parts, fmt.Sprintf("%s(%s)", step.Filter, step.Expr))
				}
				fmt.Printf("%d %-9s %s\n", int(mode), mode.String(), strings.Join(parts, " -> "))
			}
			return nil
		},
	}
}
