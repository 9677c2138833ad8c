package report

import (
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
)

// HeatmapTitle is the default heatmap title.
const HeatmapTitle = "Feature Correlation Matrix (Numeric Features Only)"

// HeatmapOptions control the rendered figure. Width and Height are in inches.
type HeatmapOptions struct {
	Title  string
	Width  float64
	Height float64
}

// DefaultHeatmapOptions is a 12x8 inch figure.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{Title: HeatmapTitle, Width: 12, Height: 8}
}

// grid lays the matrix out for plotter.HeatMap with the first column on the
// left and the first row at the top.
type grid struct {
	c *Correlation
}

func (g grid) Dims() (c, r int) {
	n := len(g.c.Names)
	return n, n
}

func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }
func (g grid) Z(c, r int) float64 { return g.c.Matrix.At(g.row(r), c) }

func (g grid) row(r int) int      { return len(g.c.Names) - 1 - r }
func (g grid) label(r int) string { return g.c.Names[g.row(r)] }

// RenderHeatmap draws c as a blue-red heatmap on a fixed [-1, 1] scale and
// saves it to path. The image format follows the extension (png, svg, pdf...).
func RenderHeatmap(c *Correlation, path string, opts HeatmapOptions) error {
	if len(c.Names) == 0 {
		return data.DataError(stageReport, "", "empty correlation matrix")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return data.DataError(stageReport, "", "heatmap size %gx%g must be positive", opts.Width, opts.Height)
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)

	g := grid{c: c}
	hm := plotter.NewHeatMap(g, cmap.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = color.Gray{Y: 200}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Add(hm)

	n := len(c.Names)
	xticks := make([]plot.Tick, n)
	yticks := make([]plot.Tick, n)
	for i := 0; i < n; i++ {
		xticks[i] = plot.Tick{Value: float64(i), Label: c.Names[i]}
		yticks[i] = plot.Tick{Value: float64(i), Label: g.label(i)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.X.Tick.Label.Rotation = math.Pi / 2

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return data.IOError(stageReport, "", err)
		}
	}
	if err := p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, path); err != nil {
		return data.IOError(stageReport, "", err)
	}
	slog.Info("Saved correlation heatmap", slog.String("path", path), slog.Int("columns", n))
	return nil
}
