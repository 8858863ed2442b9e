// Package miner implements the interactive query flows: keyword search,
// account engagement analytics and profile lookup.
package miner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"twminer/internal/logger"
	"twminer/internal/model"
	"twminer/internal/xclient"
)

// Lines shown to the user.
const (
	MsgSearchError   = "There Has Been an Error in the Search."
	MsgReportError   = "There has been an error in the search."
	MsgInvalidOption = "Please Enter a Valid Option"
	MsgInvalidNumber = "Please Enter a Valid Number"
	MsgFarewell      = "Thank you, Have a Good Day."
)

const dateLayout = "2006-01-02 15:04:05"

var (
	ErrInvalidSampleSize = errors.New("sample size must be a positive integer")
	ErrNoTranslator      = errors.New("no translator configured")
)

// Options tunes the query flows.
type Options struct {
	SearchCount     int
	TranslateTarget string
}

func (o Options) withDefaults() Options {
	if o.SearchCount <= 0 {
		o.SearchCount = 20
	}
	if o.TranslateTarget == "" {
		o.TranslateTarget = "en"
	}
	return o
}

// Client runs the menu flows against an API and writes results to out.
type Client struct {
	api        API
	translator Translator
	history    History
	out        io.Writer
	opts       Options
	log        *logger.Logger
}

func New(api API, translator Translator, history History, out io.Writer, opts Options, log *logger.Logger) *Client {
	return &Client{
		api:        api,
		translator: translator,
		history:    history,
		out:        out,
		opts:       opts.withDefaults(),
		log:        log,
	}
}

func (c *Client) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// fail prints a diagnostic line unless ctx is done; a canceled query is
// not reported to the user.
func (c *Client) fail(ctx context.Context, msg string) {
	if ctx.Err() != nil {
		return
	}
	c.println(msg)
}

// record stores the query in the history; failures are only logged.
func (c *Client) record(ctx context.Context, kind model.QueryKind, term string, results int, err error) {
	if c.history == nil {
		return
	}
	e := model.QueryEvent{At: time.Now().UTC(), Kind: kind, Term: term, Results: results}
	if err != nil {
		e.Err = xclient.Kind(err)
	}
	// the event is kept even when the query was canceled
	if herr := c.history.Record(context.WithoutCancel(ctx), e); herr != nil {
		c.log.Warn().Err(herr).Str("kind", string(kind)).Msg("history record failed")
	}
}
