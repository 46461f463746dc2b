// Package chart renders frequency bar charts and dispersion plots as PNG
// images.
package chart

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/dtnitsch/wordstat/pkg/analytics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoWords is returned when there is nothing to put on an axis.
var ErrNoWords = errors.New("no words to plot")

var (
	barColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	tickColor = color.RGBA{B: 255, A: 255}
)

// Options controls image size and axis labels.
type Options struct {
	Width           vg.Length
	Height          vg.Length
	WordLabel       string
	FrequencyLabel  string
	DispersionLabel string
}

// DefaultOptions returns a 16x12 cm canvas with English axis labels.
func DefaultOptions() Options {
	return Options{
		Width:           16 * vg.Centimeter,
		Height:          12 * vg.Centimeter,
		WordLabel:       "word",
		FrequencyLabel:  "frequency",
		DispersionLabel: "dispersion",
	}
}

type Renderer struct {
	opts Options
}

// New creates a Renderer. Zero sizes fall back to DefaultOptions.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	return &Renderer{opts: opts}
}

// BarPlot builds a bar chart with one bar per entry of freq, in the
// mapping's order.
func (r *Renderer) BarPlot(freq *analytics.FrequencyMap, name string) (*plot.Plot, error) {
	if freq.Len() == 0 {
		return nil, fmt.Errorf("bar chart %q: %w", name, ErrNoWords)
	}

	values := make(plotter.Values, 0, freq.Len())
	for _, v := range freq.Values() {
		values = append(values, float64(v))
	}

	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = r.opts.WordLabel
	p.Y.Label.Text = r.opts.FrequencyLabel

	bars, err := plotter.NewBarChart(values, r.barWidth(freq.Len()))
	if err != nil {
		return nil, fmt.Errorf("bar chart %q: %w", name, err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(freq.Keys()...)
	p.Y.Min = 0

	return p, nil
}

// Bar renders freq as a bar chart and writes it to path, replacing any
// existing file.
func (r *Renderer) Bar(freq *analytics.FrequencyMap, name, path string) error {
	p, err := r.BarPlot(freq, name)
	if err != nil {
		return err
	}
	return r.save(p, path)
}

// DispersionPlot builds a plot with a vertical tick at every point of d.
// The y axis shows one row per query word, ranked as in words, with one
// empty slot below the first row and above the last.
func (r *Renderer) DispersionPlot(d analytics.Dispersion, words []string, tokenCount int, name string) (*plot.Plot, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("dispersion plot %q: %w", name, ErrNoWords)
	}

	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = r.opts.DispersionLabel

	if d.Len() > 0 {
		pts := make(plotter.XYs, d.Len())
		for i := range pts {
			pts[i].X = float64(d.X[i])
			pts[i].Y = float64(d.Y[i])
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("dispersion plot %q: %w", name, err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  tickColor,
			Radius: vg.Points(5),
			Shape:  tickGlyph{},
		}
		p.Add(scatter)
	}

	ticks := make([]plot.Tick, len(words))
	for i, w := range words {
		ticks[i] = plot.Tick{Value: float64(i), Label: w}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Label.Color = tickColor
	p.Y.Min = -1
	p.Y.Max = float64(len(words))

	p.X.Min = 0
	p.X.Max = float64(tokenCount)
	if tokenCount <= 0 {
		p.X.Max = 1
	}

	return p, nil
}

// Dispersion renders d and writes it to path, replacing any existing file.
func (r *Renderer) Dispersion(d analytics.Dispersion, words []string, tokenCount int, name, path string) error {
	p, err := r.DispersionPlot(d, words, tokenCount, name)
	if err != nil {
		return err
	}
	return r.save(p, path)
}

func (r *Renderer) save(p *plot.Plot, path string) error {
	if err := p.Save(r.opts.Width, r.opts.Height, path); err != nil {
		return fmt.Errorf("failed to write chart %q: %w", path, err)
	}
	return nil
}

// barWidth shrinks bars so that many words still fit side by side.
func (r *Renderer) barWidth(n int) vg.Length {
	w := r.opts.Width * 0.6 / vg.Length(n)
	if w > vg.Points(20) {
		w = vg.Points(20)
	}
	if w < vg.Points(1) {
		w = vg.Points(1)
	}
	return w
}

// tickGlyph draws a vertical line centred on the point.
type tickGlyph struct{}

func (tickGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(1)})
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y - sty.Radius})
	p.Line(vg.Point{X: pt.X, Y: pt.Y + sty.Radius})
	c.Stroke(p)
}
