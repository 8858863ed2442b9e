package model

import "time"

// Credentials are the four OAuth 1.0a secrets used to sign API calls.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// Complete reports whether every credential field is set.
func (c Credentials) Complete() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// Tweet is a read-only view of the tweet fields the tool prints.
type Tweet struct {
	ID             string
	AuthorHandle   string
	AuthorName     string
	AuthorLocation string
	Text           string
	Language       string
	CreatedAt      time.Time
	LikeCount      int
	RetweetCount   int
	// Retweeted is set when the tweet is a plain repost of another tweet.
	Retweeted *Tweet
}

// Source returns the tweet whose text and counts should be shown: the
// reposted original for plain reposts, the tweet itself otherwise.
func (t Tweet) Source() Tweet {
	if t.Retweeted != nil {
		return *t.Retweeted
	}
	return t
}

// UserProfile represents the subset of X user fields shown by a lookup.
type UserProfile struct {
	ScreenName  string
	Name        string
	ID          int64
	Location    string
	CreatedAt   time.Time
	Description string
	Verified    bool
	Protected   bool
	URL         string
}

// QueryKind names the query flows.
type QueryKind string

const (
	QuerySearch   QueryKind = "search"
	QueryTimeline QueryKind = "timeline"
	QueryLookup   QueryKind = "lookup"
)

// QueryEvent captures a query we issued and how it ended.
type QueryEvent struct {
	At      time.Time
	Kind    QueryKind
	Term    string
	Results int
	Err     string // empty on success
}
