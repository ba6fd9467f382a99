// Package pitch renders filtered shot events as a scatter plot over a
// soccer pitch diagram. Marker area scales with the shot's xG value and
// marker color encodes the outcome, with a legend restricted to the
// outcomes actually present.
package pitch

import (
	"errors"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pitchlab/shotmap/internal/shots"
)

// Canonical pitch size in plot units. Normalized [0,1] coordinates are
// rescaled onto this surface before plotting.
const (
	Length = 120.0
	Width  = 80.0
)

// markerArea is the area scale factor for xG: marker area in points²
// is xg * markerArea.
const markerArea = 1500.0

// markerAlpha makes overlapping shots legible.
const markerAlpha = 178

// ErrNoShots is returned when the filtered set is empty. Callers show a
// neutral message instead of a plot.
var ErrNoShots = errors.New("no shots to render")

var (
	grassColor = color.NRGBA{R: 70, G: 132, B: 66, A: 255}
	lineColor  = color.NRGBA{R: 199, G: 213, B: 204, A: 255}
)

// Render builds the pitch plot for a non-empty filtered shot set.
// Returns ErrNoShots for an empty set.
func Render(recs []shots.Shot, title string) (*plot.Plot, error) {
	if len(recs) == 0 {
		return nil, ErrNoShots
	}

	p := plot.New()
	p.Title.Text = title
	p.BackgroundColor = grassColor
	p.HideAxes()
	p.X.Min, p.X.Max = -4, Length+4
	p.Y.Min, p.Y.Max = -4, Width+4

	if err := drawMarkings(p); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, len(recs))
	styles := make([]draw.GlyphStyle, len(recs))
	present := make(map[string]bool)
	for i, s := range recs {
		pts[i] = plotter.XY{X: *s.LocationX * Length, Y: *s.LocationY * Width}
		c := ColorFor(s.Result)
		c.A = markerAlpha
		styles[i] = draw.GlyphStyle{
			Color:  c,
			Radius: MarkerRadius(*s.XG),
			Shape:  draw.CircleGlyph{},
		}
		present[s.Result] = true
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle { return styles[i] }
	p.Add(sc)

	for _, result := range LegendResults(present) {
		thumb := &plotter.Scatter{GlyphStyle: draw.GlyphStyle{
			Color:  ColorFor(result),
			Radius: vg.Points(4),
			Shape:  draw.CircleGlyph{},
		}}
		p.Legend.Add(result, thumb)
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, nil
}

// WritePNG renders the shot map and writes it to w as a PNG.
func WritePNG(w io.Writer, recs []shots.Shot, title string) error {
	p, err := Render(recs, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(12*vg.Inch, 8*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePNG renders the shot map to a PNG file.
func SavePNG(path string, recs []shots.Shot, title string) error {
	p, err := Render(recs, title)
	if err != nil {
		return err
	}
	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

// MarkerRadius converts a shot's xG into a glyph radius so that marker
// area, not radius, grows linearly with xG.
func MarkerRadius(xg float64) vg.Length {
	if xg < 0 {
		xg = 0
	}
	return vg.Points(math.Sqrt(xg * markerArea / math.Pi))
}

// drawMarkings adds the fixed pitch geometry: touchlines, halfway line,
// center circle and spot, both penalty areas with six-yard boxes,
// penalty spots, and the penalty arcs.
func drawMarkings(p *plot.Plot) error {
	segments := [][]plotter.XY{
		// Touchlines and goal lines.
		{{X: 0, Y: 0}, {X: Length, Y: 0}, {X: Length, Y: Width}, {X: 0, Y: Width}, {X: 0, Y: 0}},
		// Halfway line.
		{{X: Length / 2, Y: 0}, {X: Length / 2, Y: Width}},
		// Penalty areas (18 units deep, 44 wide).
		{{X: 0, Y: 18}, {X: 18, Y: 18}, {X: 18, Y: 62}, {X: 0, Y: 62}},
		{{X: Length, Y: 18}, {X: Length - 18, Y: 18}, {X: Length - 18, Y: 62}, {X: Length, Y: 62}},
		// Six-yard boxes (6 units deep, 20 wide).
		{{X: 0, Y: 30}, {X: 6, Y: 30}, {X: 6, Y: 50}, {X: 0, Y: 50}},
		{{X: Length, Y: 30}, {X: Length - 6, Y: 30}, {X: Length - 6, Y: 50}, {X: Length, Y: 50}},
	}
	segments = append(segments,
		arc(Length/2, Width/2, 10, 0, 2*math.Pi),           // center circle
		arc(12, Width/2, 10, -0.927, 0.927),                // left penalty arc
		arc(Length-12, Width/2, 10, math.Pi-0.927, math.Pi+0.927), // right penalty arc
	)

	for _, seg := range segments {
		ln, err := plotter.NewLine(plotter.XYs(seg))
		if err != nil {
			return err
		}
		ln.Color = lineColor
		ln.Width = vg.Points(1.5)
		p.Add(ln)
	}

	for _, spot := range []plotter.XY{
		{X: 12, Y: Width / 2},
		{X: Length - 12, Y: Width / 2},
		{X: Length / 2, Y: Width / 2},
	} {
		sc, err := plotter.NewScatter(plotter.XYs{spot})
		if err != nil {
			return err
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: lineColor, Radius: vg.Points(2), Shape: draw.CircleGlyph{}}
		p.Add(sc)
	}
	return nil
}

// arc samples a circular arc around (cx, cy) as a polyline.
func arc(cx, cy, r, from, to float64) []plotter.XY {
	const steps = 64
	pts := make([]plotter.XY, 0, steps+1)
	for i := 0; i <= steps; i++ {
		theta := from + (to-from)*float64(i)/steps
		pts = append(pts, plotter.XY{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)})
	}
	return pts
}
