package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"dqx0.com/go/zoli/httpx"
	"dqx0.com/go/zoli/internal/obs"
	"dqx0.com/go/zoli/internal/site"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := flag.String("addr", envOr("ZOLI_WEB_ADDR", ":8080"), "listen address")
	maxBytes := flag.Int("max-request-bytes", 4096, "size of the single read per connection")
	readTimeout := flag.Duration("read-timeout", 0, "read deadline per connection (0 = none)")
	writeTimeout := flag.Duration("write-timeout", 0, "write deadline per connection (0 = none)")
	concurrent := flag.Bool("concurrent", false, "serve each connection on its own goroutine")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	jsonLogs := flag.Bool("log-json", false, "log JSON lines instead of console output")
	flag.Parse()

	lvl, err := obs.ParseLevel(*level)
	logger := obs.NewLogger(os.Stderr, *jsonLogs, lvl)
	if err != nil {
		logger.Logf(obs.Error, "%v", err)
		os.Exit(2)
	}

	routes := site.Routes()
	meter := &obs.MemMeter{}
	s := &httpx.Server{
		Addr:            *addr,
		Routes:          routes,
		ReadTimeout:     *readTimeout,
		WriteTimeout:    *writeTimeout,
		MaxRequestBytes: *maxBytes,
		Concurrent:      *concurrent,
		Logger:          logger,
		Meter:           meter,
	}

	if !*jsonLogs {
		for _, rt := range routes.Routes() {
			color.New(color.FgCyan).Fprintf(os.Stderr, "route %s\n", rt.URI)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(sctx)
	}()

	if err := s.ListenAndServe(); err != nil && !errors.Is(err, httpx.ErrServerClosed) {
		logger.Logf(obs.Error, "serve: %v", err)
		os.Exit(1)
	}
	for series, n := range meter.Snapshot() {
		logger.Logf(obs.Info, "%s = %.0f", series, n)
	}
}
