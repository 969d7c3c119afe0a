// internal/chart/chart.go
package chart

import (
	"fmt"
	"os"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// TimePoint is one value on a time axis.
type TimePoint struct {
	T time.Time
	V float64
}

// Series is a named sequence of time points, one legend entry.
type Series struct {
	Name   string
	Points []TimePoint
}

func toXYs(points []TimePoint) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.T.Unix())
		xys[i].Y = p.V
	}
	return xys
}

// SaveHistogram renders a value histogram to a PNG file.
func SaveHistogram(values []float64, title, xlabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(values), 10)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	h.FillColor = plotutil.Color(0)
	p.Add(h)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	logger.Info.Printf("Chart saved to %s", path)
	return nil
}

// SaveBar renders one bar per name to a PNG file.
func SaveBar(names []string, values []float64, title, ylabel, path string) error {
	p, err := buildBar(names, values, title, ylabel)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	logger.Info.Printf("Chart saved to %s", path)
	return nil
}

// SaveTimeLines renders one line per series over a shared time axis.
func SaveTimeLines(series []Series, title, ylabel, path string) error {
	p, err := buildTimeLines(series, title, ylabel)
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	logger.Info.Printf("Chart saved to %s", path)
	return nil
}

// SaveScatter renders an x/y scatter to a PNG file.
func SaveScatter(xs, ys []float64, title, xlabel, ylabel, path string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("scatter inputs differ in length: %d vs %d", len(xs), len(ys))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	s.GlyphStyle.Color = plotutil.Color(0)
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	logger.Info.Printf("Chart saved to %s", path)
	return nil
}

// SaveEnergyDashboard composes the three dashboard panels into one PNG:
// daily trend lines, average-weekly bars, hourly scatter.
func SaveEnergyDashboard(daily []Series, barNames []string, barValues []float64, hourly []Series, path string) error {
	trend, err := buildTimeLines(daily, "Daily Consumption Trend by Building", "kWh")
	if err != nil {
		return err
	}
	bars, err := buildBar(barNames, barValues, "Average Weekly Usage per Building", "Average Weekly kWh")
	if err != nil {
		return err
	}
	scatter, err := buildTimeScatter(hourly, "Hourly Consumption Scatter (per building)", "kWh")
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{{trend}, {bars}, {scatter}}

	img := vgimg.New(10*vg.Inch, 13*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      3,
		Cols:      1,
		PadX:      vg.Millimeter * 2,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write dashboard %s: %w", path, err)
	}
	logger.Info.Printf("Dashboard saved to %s", path)
	return nil
}

func buildTimeLines(series []Series, title, ylabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Legend.Top = true

	for i, s := range series {
		line, err := plotter.NewLine(toXYs(s.Points))
		if err != nil {
			return nil, fmt.Errorf("failed to build line for %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	return p, nil
}

func buildTimeScatter(series []Series, title, ylabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Timestamp"
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "01-02 15:04"}
	p.Legend.Top = true

	for i, s := range series {
		sc, err := plotter.NewScatter(toXYs(s.Points))
		if err != nil {
			return nil, fmt.Errorf("failed to build scatter for %s: %w", s.Name, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(sc)
		p.Legend.Add(s.Name, sc)
	}
	return p, nil
}

func buildBar(names []string, values []float64, title, ylabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}
