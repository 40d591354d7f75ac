package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/monumei/GB-Eater-Watermark-Eater/internal/cli"
)

var (
	GitSHA string = "NA"
)

func main() {
	// register sigterm for graceful shutdown
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	if err := cli.NewRoot(ctx, GitSHA, logger).Execute(); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
