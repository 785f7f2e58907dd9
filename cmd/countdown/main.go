package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"countdown/internal/cli"
	"countdown/internal/config"
	"countdown/internal/errors"
	"countdown/internal/logging"
)

func main() {
	// Interrupting the countdown is the normal way to stop it
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(config.NewLoader(), os.Stdout, os.Stderr)
	err := app.Run(ctx, os.Args[1:])

	logger := logging.New(os.Stderr, app.Config().Application.Verbose)
	if code := cli.NewErrorHandler().Report(os.Stderr, logger, err); code != errors.ExitOK {
		stop()
		os.Exit(code)
	}
}
