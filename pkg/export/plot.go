package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"bvhmotion/pkg/motion"
)

// SavePlot renders one dataset column against time and saves it as an
// image (format from the path extension, e.g. .png). The column is
// named as in Dataset.ColumnNames.
func SavePlot(path string, ds *motion.Dataset, column string) error {
	idx := -1
	for i, name := range ds.ColumnNames() {
		if name == column {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("plot: no column named %q", column)
	}

	pts := make(plotter.XYs, ds.FrameCount())
	for i, v := range ds.Column(idx) {
		pts[i] = plotter.XY{X: float64(i) * ds.FrameTime(), Y: v}
	}

	p := plot.New()
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	p.Add(s)
	p.X.Label.Text = "time"
	p.Y.Label.Text = column

	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
