package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"dqx0.com/go/zoli/internal/obs"
	"dqx0.com/go/zoli/ping"
)

func main() {
	addr := flag.String("addr", ":6969", "UDP listen address")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	jsonLogs := flag.Bool("log-json", false, "log JSON lines instead of console output")
	flag.Parse()

	lvl, err := obs.ParseLevel(*level)
	logger := obs.NewLogger(os.Stderr, *jsonLogs, lvl)
	if err != nil {
		logger.Logf(obs.Error, "%v", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := &ping.Server{Addr: *addr, Logger: logger}
	if err := s.ListenAndServe(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Logf(obs.Error, "serve: %v", err)
		os.Exit(1)
	}
}
