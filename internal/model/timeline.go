package model

// TimelineRecord is one sampled tweet of an account.
type TimelineRecord struct {
	ScreenName   string
	Text         string
	LikeCount    int
	RetweetCount int
}

// TimelineTable is an ordered sample of an account's recent tweets.
type TimelineTable struct {
	Records []TimelineRecord
}

// NewTimelineTable builds a table from tweets, keeping at most limit records.
func NewTimelineTable(tweets []Tweet, limit int) *TimelineTable {
	if limit < 0 {
		limit = 0
	}
	n := len(tweets)
	if n > limit {
		n = limit
	}
	records := make([]TimelineRecord, 0, n)
	for _, t := range tweets[:n] {
		records = append(records, TimelineRecord{
			ScreenName:   t.AuthorHandle,
			Text:         t.Text,
			LikeCount:    t.LikeCount,
			RetweetCount: t.RetweetCount,
		})
	}
	return &TimelineTable{Records: records}
}

// Len returns the number of sampled tweets.
func (t *TimelineTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// ScreenName returns the screen name of the first record.
func (t *TimelineTable) ScreenName() string {
	if t.Len() == 0 {
		return ""
	}
	return t.Records[0].ScreenName
}

// Likes returns the like counts in record order.
func (t *TimelineTable) Likes() []float64 {
	out := make([]float64, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, float64(t.Records[i].LikeCount))
	}
	return out
}

// Retweets returns the retweet counts in record order.
func (t *TimelineTable) Retweets() []float64 {
	out := make([]float64, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, float64(t.Records[i].RetweetCount))
	}
	return out
}
