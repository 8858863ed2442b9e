package miner

import (
	"context"
	"fmt"

	"twminer/internal/cmdlog"
	"twminer/internal/model"
	"twminer/internal/util"
)

// SearchRecentTweets returns the most recent tweets matching query. On
// failure it prints a single diagnostic line and returns the error.
func (c *Client) SearchRecentTweets(ctx context.Context, query string) ([]model.Tweet, error) {
	var tweets []model.Tweet
	err := cmdlog.Run(c.log, string(model.QuerySearch), func() error {
		var err error
		tweets, err = c.api.SearchRecent(ctx, query, c.opts.SearchCount)
		return err
	})
	c.record(ctx, model.QuerySearch, query, len(tweets), err)
	if err != nil {
		c.fail(ctx, MsgSearchError)
		return nil, err
	}
	return tweets, nil
}

// PrintSearchedTweets prints one block per tweet. Text and counts of plain
// reposts come from the reposted tweet. Bodies not in English are
// translated first. The first failure stops the output with a diagnostic.
func (c *Client) PrintSearchedTweets(ctx context.Context, tweets []model.Tweet) error {
	for _, t := range tweets {
		src := t.Source()

		c.println()
		c.println("Username:", t.AuthorHandle)
		c.println("Name:", t.AuthorName)

		body := util.CleanTweet(src.Text)
		if util.IsEnglish(t.Language) {
			c.println("Tweet Body:", body)
		} else {
			translated, err := c.translate(ctx, body)
			if err != nil {
				c.log.Error().Err(err).Str("tweet", t.ID).Str("lang", t.Language).Msg("translation failed")
				if ctx.Err() == nil {
					c.println(MsgSearchError)
					c.println()
				}
				return fmt.Errorf("translate tweet %s: %w", t.ID, err)
			}
			c.println("English Translation:", translated)
		}

		c.println("Date:", t.CreatedAt.UTC().Format(dateLayout))
		if t.AuthorLocation != "" {
			c.println("Location:", t.AuthorLocation)
		}
		c.println("Like Count:", src.LikeCount)
		c.println("Retweet Count:", src.RetweetCount)
		c.println()
	}
	return nil
}

func (c *Client) translate(ctx context.Context, text string) (string, error) {
	if c.translator == nil {
		return "", ErrNoTranslator
	}
	return c.translator.Translate(ctx, text, c.opts.TranslateTarget)
}
