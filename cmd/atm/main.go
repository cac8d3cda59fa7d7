package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atm-sim/atm_sim/internal/config"
	"github.com/atm-sim/atm_sim/internal/engine"
	"github.com/atm-sim/atm_sim/internal/ledger"
	"github.com/atm-sim/atm_sim/internal/logging"
	"github.com/atm-sim/atm_sim/internal/session"
	"github.com/atm-sim/atm_sim/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := ledger.NewDemoStore()
	eng := engine.New(store)
	sess := session.New(eng, store, session.Config{
		Timeout:      cfg.SessionTimeout,
		HistoryDepth: cfg.HistoryDepth,
		Logger:       logger,
	})
	defer sess.Close()

	logger.Info("kiosk starting", "app", cfg.AppName, "session_timeout", cfg.SessionTimeout.String())

	terminal := ui.New(sess, os.Stdin, os.Stdout, logger, cfg.CardReadDelay)
	if err := terminal.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("kiosk error", "error", err)
		os.Exit(1)
	}

	logger.Info("kiosk exited cleanly")
}
