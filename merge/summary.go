package merge

import (
	"fmt"
	"log"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/numbers"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a finished merge.
type Summary struct {
	Rows            int // data matrix records written, not counting the header
	Matched         int // rows whose identifier had at least one value
	Unmatched       int
	HeaderForwarded bool
	Counts          []int // Counts[k] is the number of rows that received k values
	Max             int
	Mean            float64 // values per row
	StdDev          float64
}

func (s *Summary) add(values int) {
	s.Rows++
	if values == 0 {
		s.Unmatched++
	} else {
		s.Matched++
	}
	for len(s.Counts) <= values {
		s.Counts = append(s.Counts, 0)
	}
	s.Counts[values]++
	s.Max = numbers.Max(s.Max, values)
}

func (s *Summary) finish() {
	if s.Rows == 0 {
		return
	}
	x, weights := s.histogram()
	s.Mean = stat.Mean(x, weights)
	if s.Rows > 1 {
		s.StdDev = stat.StdDev(x, weights)
	}
}

// histogram returns each possible values-per-row count and the number of rows with that count.
func (s Summary) histogram() (x, weights []float64) {
	x = make([]float64, len(s.Counts))
	weights = make([]float64, len(s.Counts))
	for i := range s.Counts {
		x[i] = float64(i)
		weights[i] = float64(s.Counts[i])
	}
	return x, weights
}

func (s Summary) String() string {
	answer := new(strings.Builder)
	answer.WriteString(fmt.Sprintf("rows: %d\tmatched: %d\tunmatched: %d\n", s.Rows, s.Matched, s.Unmatched))
	answer.WriteString(fmt.Sprintf("values per row: mean %.2f\tstdev %.2f\tmax %d", s.Mean, s.StdDev, s.Max))
	return answer.String()
}

// Report logs the summary and a chart of the number of rows by values merged.
func Report(s Summary) {
	log.Println(s.String())
	if s.Rows == 0 {
		return
	}
	_, rows := s.histogram()
	if len(rows) < 2 {
		rows = append(rows, 0)
	}
	log.Println("\n" + asciigraph.Plot(rows, asciigraph.Height(10), asciigraph.Precision(0),
		asciigraph.Caption("rows by number of merged values")))
}
