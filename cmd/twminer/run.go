package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"twminer/internal/config"
	"twminer/internal/logger"
	"twminer/internal/metrics"
	"twminer/internal/miner"
	"twminer/internal/store/history"
	"twminer/internal/translate"
	"twminer/internal/xclient"
)

func runMiner(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}
	if addr := cctx.String("metrics-addr"); addr != "" {
		cfg.Metrics.Addr = addr
	}

	log := logger.NewClientLogger("twminer", cfg.Log.Path, cfg.Log.Level)
	metrics.StartServer(cfg.Metrics.Addr)

	var hist miner.History = history.Nop{}
	if cfg.Storage.DBPath != "" {
		db, err := history.Open(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer db.Close()
		hist = db
	}

	ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// a second interrupt gets the default behavior
		<-ctx.Done()
		stop()
	}()

	auth := xclient.Authenticator{
		Options: xclient.Options{
			RequestTimeout:    cfg.API.RequestTimeout,
			RPS:               cfg.API.RPS,
			Burst:             cfg.API.Burst,
			MaxRateLimitWaits: cfg.API.MaxRateLimitWaits,
			VerifyCredentials: cfg.API.Verify(),
		},
		Out: os.Stdout,
		Log: log.GetChildLogger(),
	}
	api := xclient.New(auth.Authenticate(ctx, cfg.ModelCredentials()), log)
	tr := translate.New(cfg.Translate.BaseURL, cfg.Translate.Timeout, log)

	client := miner.New(api, tr, hist, os.Stdout, miner.Options{
		SearchCount:     cfg.Search.Count,
		TranslateTarget: cfg.Translate.Target,
	}, log)

	log.Info().Str("history", cfg.Storage.DBPath).Str("metrics", cfg.Metrics.Addr).Msg("starting menu")
	err = client.DisplayMenu(ctx, os.Stdin)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("interrupted")
		return nil
	}
	return err
}

func runInit(cctx *cli.Context) error {
	path := cctx.String("path")
	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	abs, _ := filepath.Abs(path)
	fmt.Fprintln(cctx.App.Writer, "Config written to:", abs)
	return nil
}
