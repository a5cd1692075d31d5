package analysis

import (
	"fmt"
	"io"
	"math"

	"github.com/zeu5/bandits/core"
	"gonum.org/v1/gonum/stat"
)

// Summarizer reduces a dataset to a single number
type Summarizer interface {
	Summary() float64
}

// SummaryComparator prints one line per experiment with the summary of its
// dataset for the run, and the mean and standard deviation over all runs
// seen so far
type SummaryComparator struct {
	name    string
	run     int
	writer  io.Writer
	history map[string][]float64
}

var _ core.Comparator = &SummaryComparator{}

func (s *SummaryComparator) Compare(experimentNames []string, datasets []core.DataSet) {
	width := 0
	for _, name := range experimentNames {
		if len(name) > width {
			width = len(name)
		}
	}
	fmt.Fprintf(s.writer, "Run %d: %s\n", s.run, s.name)
	for i, name := range experimentNames {
		summary, ok := datasets[i].(Summarizer)
		if !ok {
			fmt.Fprintf(s.writer, "  %-*s  error\n", width, name)
			continue
		}
		v := summary.Summary()
		s.history[name] = append(s.history[name], v)
		mean, std := stat.MeanStdDev(s.history[name], nil)
		if math.IsNaN(std) {
			std = 0
		}
		fmt.Fprintf(s.writer, "  %-*s  %12.4f  (mean %.4f ± %.4f over %d runs)\n",
			width, name, v, mean, std, len(s.history[name]))
	}
}

type SummaryComparatorConstructor struct {
	name    string
	writer  io.Writer
	history map[string][]float64
}

var _ core.ComparatorConstructor = &SummaryComparatorConstructor{}

func NewSummaryComparatorConstructor(name string, writer io.Writer) *SummaryComparatorConstructor {
	return &SummaryComparatorConstructor{
		name:    name,
		writer:  writer,
		history: make(map[string][]float64),
	}
}

func (s *SummaryComparatorConstructor) NewComparator(run int) core.Comparator {
	return &SummaryComparator{
		name:    s.name,
		run:     run,
		writer:  s.writer,
		history: s.history,
	}
}
