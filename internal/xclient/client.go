package xclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dghubble/go-twitter/twitter"

	"twminer/internal/logger"
	"twminer/internal/model"
)

// Client issues the read queries the tool needs against the v1.1 API.
// A Client built over a nil session fails every call with ErrNoSession.
type Client struct {
	session *Session
	log     *logger.Logger
}

func New(session *Session, log *logger.Logger) *Client {
	return &Client{session: session, log: log}
}

// SearchRecent returns up to count of the most recent tweets matching query,
// with untruncated text.
func (c *Client) SearchRecent(ctx context.Context, query string, count int) ([]model.Tweet, error) {
	if err := c.ready(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search tweets: %w: empty query", ErrBadRequest)
	}
	search, resp, err := c.session.api.Search.Tweets(&twitter.SearchTweetParams{
		Query:      query,
		Count:      count,
		ResultType: "recent",
		TweetMode:  "extended",
	})
	if err = mapError(resp, err); err != nil {
		return nil, fmt.Errorf("search tweets: %w", err)
	}
	if search == nil {
		return nil, nil
	}
	return convertTweets(search.Statuses), nil
}

// UserTimeline returns up to count of the account's most recent original
// tweets; reposts are excluded server side.
func (c *Client) UserTimeline(ctx context.Context, screenName string, count int) ([]model.Tweet, error) {
	if err := c.ready(ctx); err != nil {
		return nil, err
	}
	tweets, resp, err := c.session.api.Timelines.UserTimeline(&twitter.UserTimelineParams{
		ScreenName:      screenName,
		Count:           count,
		IncludeRetweets: twitter.Bool(false),
		TweetMode:       "extended",
	})
	if err = mapError(resp, err); err != nil {
		return nil, fmt.Errorf("user timeline %q: %w", screenName, err)
	}
	return convertTweets(tweets), nil
}

// LookupUser fetches a single profile by handle.
func (c *Client) LookupUser(ctx context.Context, screenName string) (model.UserProfile, error) {
	if err := c.ready(ctx); err != nil {
		return model.UserProfile{}, err
	}
	user, resp, err := c.session.api.Users.Show(&twitter.UserShowParams{ScreenName: screenName})
	if err = mapError(resp, err); err != nil {
		return model.UserProfile{}, fmt.Errorf("show user %q: %w", screenName, err)
	}
	if user == nil {
		return model.UserProfile{}, fmt.Errorf("show user %q: %w", screenName, ErrNotFound)
	}
	return convertUser(*user), nil
}

func (c *Client) ready(ctx context.Context) error {
	if c.session == nil {
		return ErrNoSession
	}
	return ctx.Err()
}

func convertTweets(in []twitter.Tweet) []model.Tweet {
	out := make([]model.Tweet, 0, len(in))
	for _, t := range in {
		out = append(out, convertTweet(t))
	}
	return out
}

func convertTweet(t twitter.Tweet) model.Tweet {
	text := t.FullText
	if text == "" {
		text = t.Text
	}
	out := model.Tweet{
		ID:           t.IDStr,
		Text:         text,
		Language:     t.Lang,
		CreatedAt:    parseTime(t.CreatedAt),
		LikeCount:    t.FavoriteCount,
		RetweetCount: t.RetweetCount,
	}
	if t.User != nil {
		out.AuthorHandle = t.User.ScreenName
		out.AuthorName = t.User.Name
		out.AuthorLocation = t.User.Location
	}
	if t.RetweetedStatus != nil {
		rt := convertTweet(*t.RetweetedStatus)
		out.Retweeted = &rt
	}
	return out
}

func convertUser(u twitter.User) model.UserProfile {
	return model.UserProfile{
		ScreenName:  u.ScreenName,
		Name:        u.Name,
		ID:          u.ID,
		Location:    u.Location,
		CreatedAt:   parseTime(u.CreatedAt),
		Description: u.Description,
		Verified:    u.Verified,
		Protected:   u.Protected,
		URL:         u.URL,
	}
}

// parseTime reads the v1.1 timestamp format, e.g. "Wed Oct 10 20:19:24 +0000 2018".
func parseTime(s string) time.Time {
	ts, err := time.Parse(time.RubyDate, s)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}
