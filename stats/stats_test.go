package stats

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestSummarize(t *testing.T) {
	is := is.New(t)
	type tc struct {
		values []float64
		mean   float64
		stdev  float64
		min    float64
		max    float64
	}
	cases := []tc{
		{[]float64{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 10, 23},
		{[]float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 10, 124},
		{[]float64{1}, 1, 0, 1, 1},
		{[]float64{}, 0, 0, 0, 0},
		{[]float64{1, 1}, 1, 0, 1, 1},
	}
	for _, c := range cases {
		s := Summarize(c.values)
		is.Equal(s.Count, len(c.values))
		is.True(FuzzyEqual(s.Mean, c.mean))
		is.True(FuzzyEqual(s.Stdev, c.stdev))
		is.Equal(s.Min, c.min)
		is.Equal(s.Max, c.max)
	}
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(0), 0))
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	s := Summarize([]float64{10, 12, 23, 23, 16, 23, 21, 16})
	is.True(FuzzyEqual(s.StandardError(), 5.2372293656638/2.8284271247461903))
	is.True(s.ConfidenceInterval(99) > s.ConfidenceInterval(95))
	is.Equal(Summarize(nil).StandardError(), 0.0)
}

func TestHistogram(t *testing.T) {
	is := is.New(t)
	is.Equal(HistogramString(nil, 5), "")

	out := HistogramString([]float64{1, 1, 1, 2, 3, 4, 4, 10}, 3)
	is.True(out != "")
	// One line per bin.
	is.True(strings.Count(out, "\n") >= 3)
}
