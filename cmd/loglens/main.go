package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"loglens/internal/config"
	"loglens/internal/ui"
	"loglens/internal/util/logx"
	"loglens/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	defer logx.Close()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		if errors.Is(err, config.ErrMissingPath) {
			fmt.Fprintln(os.Stderr, "usage: loglens [flags] <path>")
		}
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("loglens", version.String())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting loglens %s: %s", version.String(), cfg.String())
	if err := ui.Run(ctx, cfg); err != nil {
		logx.Errorf("loglens exited with error: %v", err)
		// the terminal is restored by now; show what led up to the failure
		for _, l := range logx.Tail(20) {
			fmt.Fprintln(os.Stderr, l)
		}
		cancel()
		logx.Close()
		os.Exit(1)
	}
}
