// Scytale - classical text ciphers from the command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zoobzio/scytale/internal/cli"
	"github.com/zoobzio/scytale/internal/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, os.Args[1:]); err != nil {
		logger.New(int(logger.LevelQuiet)).Error("scytale: %v", err)
		os.Exit(1)
	}
}
