package miner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"twminer/internal/theme"
)

// DisplayMenu shows the menu and runs the selected flows until the user
// quits or the input ends. Query failures never end the loop; a canceled
// ctx does.
func (c *Client) DisplayMenu(ctx context.Context, in io.Reader) error {
	lr := newLineReader(in)
	defer lr.stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		theme.PrintMenu(c.out)

		choice, ok := c.prompt(ctx, lr, "Enter an Option: ")
		if !ok {
			return c.inputErr(ctx, lr)
		}

		switch choice {
		case "1":
			query, ok := c.prompt(ctx, lr, "Enter Your Search: ")
			if !ok {
				return c.inputErr(ctx, lr)
			}
			tweets, err := c.SearchRecentTweets(ctx, query)
			if err != nil {
				continue
			}
			_ = c.PrintSearchedTweets(ctx, tweets)

		case "2":
			account, ok := c.prompt(ctx, lr, "Which Account Needs to Be Analyzed? ")
			if !ok {
				return c.inputErr(ctx, lr)
			}
			raw, ok := c.prompt(ctx, lr, "Specify the Number of Tweets to Sample: ")
			if !ok {
				return c.inputErr(ctx, lr)
			}
			amount, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil || amount <= 0 {
				c.log.Debug().Str("input", raw).Msg("invalid sample size")
				c.println()
				c.println(MsgInvalidNumber)
				c.println()
				continue
			}
			table, err := c.GetUserTweets(ctx, account, amount)
			if err != nil {
				continue
			}
			_ = c.TweetPerformance(table)

		case "3":
			handle, ok := c.prompt(ctx, lr, "Which Twitter User Would You Like to Look Up? ")
			if !ok {
				return c.inputErr(ctx, lr)
			}
			profile, err := c.GetUser(ctx, handle)
			if err != nil {
				continue
			}
			c.PrintUser(profile)

		case "q":
			c.println(MsgFarewell)
			c.println()
			return nil

		default:
			c.println()
			c.println(MsgInvalidOption)
			c.println()
		}
	}
}

// prompt writes label and waits for one line; ok is false once the input
// has ended or ctx is done.
func (c *Client) prompt(ctx context.Context, lr *lineReader, label string) (string, bool) {
	fmt.Fprint(c.out, label)
	select {
	case <-ctx.Done():
		return "", false
	case line, open := <-lr.lines:
		return line, open
	}
}

// inputErr ends the loop: nil at EOF, the read error otherwise, and the
// context error when the loop was canceled.
func (c *Client) inputErr(ctx context.Context, lr *lineReader) error {
	c.println()
	if err := ctx.Err(); err != nil {
		c.log.Info().Err(err).Msg("menu canceled")
		return err
	}
	if err := lr.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	c.log.Info().Msg("input closed")
	return nil
}

// lineReader delivers input lines on a channel so a prompt can also wait on
// a context. Lines have no length limit.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error // set before lines is closed
}

func newLineReader(in io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string), done: make(chan struct{})}
	go lr.run(bufio.NewReader(in))
	return lr
}

// stop releases the reader goroutine once no more lines are wanted. A read
// already blocked on in returns when in does.
func (lr *lineReader) stop() { close(lr.done) }

func (lr *lineReader) run(r *bufio.Reader) {
	defer close(lr.lines)
	for {
		line, err := r.ReadString('\n')
		if line != "" || err == nil {
			select {
			case lr.lines <- strings.TrimRight(line, "\r\n"):
			case <-lr.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				lr.err = err
			}
			return
		}
	}
}

// Err returns the read error that ended the input, if any. It is only
// meaningful after lines has been closed.
func (lr *lineReader) Err() error { return lr.err }
