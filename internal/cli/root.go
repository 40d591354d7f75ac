// Command surface for mode/strength/seed selection and file plumbing
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRoot builds the root command. The logger is reconfigured from the
// persistent flags before any subcommand runs.
func NewRoot(ctx context.Context, gitsha string, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gbeater",
		Short: "pixel-level image protection and watermarking",
		Long:  "Applies seeded, deterministic protection passes to an image to degrade automated feature extraction, and composites watermarks onto the result.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(cmd, logger)
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewProtectCmd(ctx, logger),
		NewWatermarkCmd(ctx, logger),
		NewModesCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "write logs to a rotating file instead of stdout")
	pf.Bool("json", false, "emit logs as JSON")
	return cmd
}

func configureLogger(cmd *cobra.Command, logger *logrus.Logger) {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	jsonLogs, _ := cmd.Flags().GetBool("json")
	if jsonLogs {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		logger.SetOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	} else {
		logger.SetOutput(os.Stdout)
	}

	if err != nil {
		logger.WithField("level", levelStr).Warn("Invalid log level, defaulting to info")
	}
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Println(strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(subCmd, indent+1)
	}
}

// NewVersionCmd reports the git sha for this build.
func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitsha)
		},
	}
}
