package analytics

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"twminer/internal/model"
)

var ErrEmptyTable = errors.New("timeline table is empty")

// PerformanceReport is the engagement summary of one account's sample.
type PerformanceReport struct {
	ScreenName string
	Tweets     int
	Likes      Summary
	Retweets   Summary
}

// NewPerformanceReport summarizes the like and retweet rows of table.
func NewPerformanceReport(table *model.TimelineTable) (PerformanceReport, error) {
	if table.Len() == 0 {
		return PerformanceReport{}, ErrEmptyTable
	}
	likes, err := Summarize(table.Likes())
	if err != nil {
		return PerformanceReport{}, fmt.Errorf("likes: %w", err)
	}
	retweets, err := Summarize(table.Retweets())
	if err != nil {
		return PerformanceReport{}, fmt.Errorf("retweets: %w", err)
	}
	return PerformanceReport{
		ScreenName: table.ScreenName(),
		Tweets:     table.Len(),
		Likes:      likes,
		Retweets:   retweets,
	}, nil
}

// Render formats the report as fixed-width text: labels padded to 32
// columns, values right aligned in 16 with two decimals.
func (r PerformanceReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n--------  %s's Tweet Engagement  --------\n\n", r.ScreenName)
	row(&b, "Tweets Returned: ", float64(r.Tweets))
	b.WriteString("\n")
	section(&b, "Likes", r.Likes)
	b.WriteString("\n")
	section(&b, "Retweets", r.Retweets)
	b.WriteString("\n")
	return b.String()
}

// WriteTo writes the rendered report to w.
func (r PerformanceReport) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Render())
	return int64(n), err
}

func section(b *strings.Builder, noun string, s Summary) {
	row(b, "Total "+noun+": ", s.Sum)
	row(b, "Highest Number of "+noun+": ", s.Max)
	row(b, "Lowest Number of "+noun+": ", s.Min)
	row(b, "Average Number of "+noun+": ", s.Mean)
	row(b, "Median "+noun+": ", s.Median)
	row(b, "Standard Deviation of "+noun+": ", s.StdDev)
	row(b, "Variance of "+noun+": ", s.Variance)
}

func row(b *strings.Builder, label string, v float64) {
	fmt.Fprintf(b, "%-32s%16.2f\n", label, v)
}
