package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"twminer/internal/config"
	"twminer/internal/store/history"
	"twminer/internal/theme"
)

var errHistoryDisabled = errors.New("history is disabled: set storage.dbPath or STORAGE_DB_PATH")

func runHistory(cctx *cli.Context) error {
	n := cctx.Int("n")
	if n <= 0 {
		return fmt.Errorf("-n must be positive, got %d", n)
	}
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}
	if cfg.Storage.DBPath == "" {
		return errHistoryDisabled
	}

	db, err := history.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer db.Close()

	events, err := db.Recent(cctx.Context, n)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(cctx.App.Writer, "No queries recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.At.Local().Format("2006-01-02 15:04:05"),
			string(e.Kind),
			e.Term,
			strconv.Itoa(e.Results),
			e.Err,
		})
	}
	fmt.Fprintln(cctx.App.Writer, theme.Table(cctx.App.Writer,
		[]string{"When", "Kind", "Term", "Results", "Error"}, rows))
	return nil
}
