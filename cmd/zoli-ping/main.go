package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"

	"dqx0.com/go/zoli/ping"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := flag.String("addr", envOr("ZOLI_PING_ADDR", "localhost:6969"), "echo server address")
	timeout := flag.Duration("timeout", ping.DefaultTimeout, "how long to wait for each echo")
	count := flag.Int("count", 1, "number of probes")
	interval := flag.Duration("interval", time.Second, "pause between probes")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	flag.Parse()
	if *count < 1 {
		*count = 1
	}
	if *noColor {
		color.NoColor = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	failed := 0
	for i := 0; i < *count; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				os.Exit(1)
			case <-time.After(*interval):
			}
		}
		r, err := ping.Probe(ctx, *addr, *timeout)
		switch {
		case errors.Is(err, ping.ErrTimeout):
			failed++
			bad.Println("Request timed out.")
		case err != nil:
			failed++
			bad.Fprintf(os.Stderr, "ping: %v\n", err)
		default:
			ok.Println(r.String())
		}
	}
	if failed == *count {
		os.Exit(1)
	}
}
