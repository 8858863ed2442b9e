package miner

import (
	"context"
	"fmt"

	"twminer/internal/analytics"
	"twminer/internal/cmdlog"
	"twminer/internal/model"
)

// GetUserTweets samples up to amount of the account's latest original
// tweets. On failure it prints a single diagnostic line.
func (c *Client) GetUserTweets(ctx context.Context, account string, amount int) (*model.TimelineTable, error) {
	if amount <= 0 {
		c.println(MsgSearchError)
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, amount)
	}

	var tweets []model.Tweet
	err := cmdlog.Run(c.log, string(model.QueryTimeline), func() error {
		var err error
		tweets, err = c.api.UserTimeline(ctx, account, amount)
		return err
	})
	table := model.NewTimelineTable(tweets, amount)
	c.record(ctx, model.QueryTimeline, account, table.Len(), err)
	if err != nil {
		c.fail(ctx, MsgSearchError)
		return nil, err
	}
	return table, nil
}

// TweetPerformance prints the engagement report of table, or a single
// diagnostic line when the table holds nothing to summarize.
func (c *Client) TweetPerformance(table *model.TimelineTable) error {
	report, err := analytics.NewPerformanceReport(table)
	if err != nil {
		c.log.Error().Err(err).Msg("performance report")
		c.println(MsgReportError)
		return err
	}
	if _, err := report.WriteTo(c.out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	c.println()
	return nil
}
