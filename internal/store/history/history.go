package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"twminer/internal/model"
)

// DB is a SQLite-backed log of the queries issued by the tool.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// :memory: databases are per connection
	d.SetMaxOpenConns(1)
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = d.Close()
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS query_events (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  ts INTEGER NOT NULL,
	  kind TEXT NOT NULL,
	  term TEXT NOT NULL,
	  results INTEGER NOT NULL DEFAULT 0,
	  error TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_query_events_ts ON query_events(ts);
	`)
	return err
}

// Record appends a query event.
func (d *DB) Record(ctx context.Context, e model.QueryEvent) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	var errText *string
	if e.Err != "" {
		errText = &e.Err
	}
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO query_events(ts, kind, term, results, error) VALUES(?,?,?,?,?)`,
		e.At.UTC().UnixMilli(), string(e.Kind), e.Term, e.Results, errText)
	if err != nil {
		return fmt.Errorf("record query event: %w", err)
	}
	return nil
}

// Recent returns up to n events, newest first.
func (d *DB) Recent(ctx context.Context, n int) ([]model.QueryEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT ts, kind, term, results, COALESCE(error, '') FROM query_events ORDER BY ts DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.QueryEvent
	for rows.Next() {
		var (
			ts   int64
			kind string
			e    model.QueryEvent
		)
		if err := rows.Scan(&ts, &kind, &e.Term, &e.Results, &e.Err); err != nil {
			return nil, err
		}
		e.At = time.UnixMilli(ts).UTC()
		e.Kind = model.QueryKind(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Nop discards every event. It is used when no database path is configured.
type Nop struct{}

func (Nop) Record(context.Context, model.QueryEvent) error { return nil }
