// Package stats describes collections of tile values, such as what is left
// in the reserve.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Summary holds the sample statistics of a set of values.
type Summary struct {
	Count int
	Mean  float64
	Stdev float64
	Min   float64
	Max   float64
}

// Summarize computes a Summary. Stdev is the sample standard deviation, and
// is zero when there are fewer than two values.
func Summarize(values []float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		return s
	}
	if len(values) == 1 {
		s.Mean = values[0]
	} else {
		s.Mean, s.Stdev = stat.MeanStdDev(values, nil)
	}
	s.Min, s.Max = values[0], values[0]
	for _, v := range values[1:] {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	return s
}

// StandardError returns the standard error of the mean.
func (s Summary) StandardError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Stdev / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval returns the half-width of the two-tailed interval
// around the mean, for a confidence between 0 and 100 percent.
func (s Summary) ConfidenceInterval(confidence float64) float64 {
	return ZVal(confidence) * s.StandardError()
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.2f stdev=%.2f min=%g max=%g (95%% ±%.2f)",
		s.Count, s.Mean, s.Stdev, s.Min, s.Max, s.ConfidenceInterval(95))
}

// ZVal returns the two-tailed Z-value for a confidence interval given in
// percent.
func ZVal(confidence float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidence/100) / 2)
}

// Histogram writes a text histogram of values with the given number of
// bins. Nothing is written for an empty input.
func Histogram(w io.Writer, values []float64, bins int) error {
	if len(values) == 0 || bins <= 0 {
		return nil
	}
	hist := histogram.Hist(bins, values)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

// HistogramString is Histogram rendered into a string.
func HistogramString(values []float64, bins int) string {
	var sb strings.Builder
	if err := Histogram(&sb, values, bins); err != nil {
		return err.Error()
	}
	return sb.String()
}
