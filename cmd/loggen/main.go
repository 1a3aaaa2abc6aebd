package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var (
		outPath  string
		rate     float64
		duration time.Duration
		seed     int64
		backfill int
	)
	flag.StringVar(&outPath, "out", "", "append to this file instead of stdout")
	flag.Float64Var(&rate, "rate", 5, "lines per second")
	flag.DurationVar(&duration, "duration", 0, "stop after this long (0 = until interrupted)")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.IntVar(&backfill, "backfill", 0, "write this many lines immediately before streaming")
	flag.Parse()

	if rate <= 0 {
		fmt.Fprintln(os.Stderr, "rate must be positive")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.OpenFile(outPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open output:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	n, err := run(ctx, out, newGenerator(seed), rate, backfill)
	if err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %d lines\n", n)
}

// run writes backfill lines at once, then one line per tick until ctx ends.
// Each line is flushed so a viewer polling the file sees it immediately.
func run(ctx context.Context, out io.Writer, g *generator, rate float64, backfill int) (int, error) {
	w := bufio.NewWriter(out)
	written := 0
	emit := func() error {
		if _, err := fmt.Fprintln(w, g.line(time.Now())); err != nil {
			return err
		}
		written++
		return w.Flush()
	}
	for i := 0; i < backfill; i++ {
		if err := emit(); err != nil {
			return written, err
		}
	}

	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return written, nil
		case <-ticker.C:
			if err := emit(); err != nil {
				return written, err
			}
		}
	}
}
