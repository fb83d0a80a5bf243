package merge

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePlot saves a bar chart of the number of rows by values merged. The image format
// is chosen from the extension of filename (png, svg, pdf, ...).
func WritePlot(s Summary, filename string) error {
	p := plot.New()
	p.Title.Text = "Merged values per row"
	p.X.Label.Text = "values merged"
	p.Y.Label.Text = "rows"

	_, rows := s.histogram()
	if len(rows) == 0 {
		rows = []float64{0}
	}
	bars, err := plotter.NewBarChart(plotter.Values(rows), vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	labels := make([]string, len(rows))
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
