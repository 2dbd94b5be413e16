package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/ihilario9/Binary-Search-Tree/config"
	"github.com/ihilario9/Binary-Search-Tree/demo"
	"github.com/ihilario9/Binary-Search-Tree/logs"
)

func main() {
	cfg := &demo.Config{}
	parser, err := config.Generate("bstdemo", cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := parser.Parse(os.Args[1:]); err != nil {
		var parseErr config.ErrParseFlags
		switch {
		case errors.Is(err, pflag.ErrHelp):
			os.Exit(0)
		case errors.As(err, &parseErr):
			// the flag parser already reported the error
			os.Exit(2)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = logs.WithTraceID(ctx, logs.NewTraceID())

	logger := cfg.Log.NewLogger(os.Stderr)
	runner := demo.NewRunner(demo.RunnerProps{
		Config: cfg,
		Logger: logger,
		Output: os.Stdout,
	})

	if err := runner.Run(ctx); err != nil {
		logger.Error(ctx, "failed to run scenarios", logs.MapFields{
			"err": err.Error(),
		})
		cancel()
		os.Exit(1)
	}
}
