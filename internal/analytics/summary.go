package analytics

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

var ErrNoData = errors.New("no data to summarize")

// Summary holds the descriptive statistics of one engagement series.
// StdDev and Variance are sample statistics (n-1) and are NaN for a single
// observation.
type Summary struct {
	Count    int
	Sum      float64
	Max      float64
	Min      float64
	Mean     float64
	Median   float64
	StdDev   float64
	Variance float64
}

// Summarize computes a Summary over values.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoData
	}
	data := stats.Float64Data(values)
	s := Summary{Count: data.Len()}

	steps := []struct {
		name string
		dst  *float64
		fn   func(stats.Float64Data) (float64, error)
	}{
		{"sum", &s.Sum, stats.Sum},
		{"max", &s.Max, stats.Max},
		{"min", &s.Min, stats.Min},
		{"mean", &s.Mean, stats.Mean},
		{"median", &s.Median, stats.Median},
		{"stddev", &s.StdDev, stats.StandardDeviationSample},
		{"variance", &s.Variance, stats.SampleVariance},
	}
	for _, st := range steps {
		v, err := st.fn(data)
		if err != nil {
			return Summary{}, fmt.Errorf("%s: %w", st.name, err)
		}
		*st.dst = v
	}
	return s, nil
}
