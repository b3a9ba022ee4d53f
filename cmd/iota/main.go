package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/iota/internal/cli"
	"go.llib.dev/iota/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		l := &logging.Logger{Out: os.Stderr}
		l.Fatal(ctx, "failed to load the configuration", logging.ErrField(err))
		os.Exit(1)
	}

	if err := cli.Execute(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}
