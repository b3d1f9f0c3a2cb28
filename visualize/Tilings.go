// Package visualize renders the tilings of a TileCoder with gonum/plot
package visualize

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/samuelfneumann/gotile/tilecoder"
)

// Size is the default width and height of saved plots
const Size = 8 * vg.Inch

// Tilings plots the tile boundaries of every tiling of a TileCoder
// projected onto dimensions x and y. Each point in points is drawn
// along with the outline of its active tile in each tiling; points
// must have the dimensionality of the TileCoder.
func Tilings(t *tilecoder.TileCoder, x, y int,
	points [][]float64) (*plot.Plot, error) {
	if x == y || x < 0 || y < 0 || x >= t.Dims() || y >= t.Dims() {
		return nil, fmt.Errorf("tilings: cannot plot dimensions (%d, %d) "+
			"of a %d-dimensional tile coder", x, y, t.Dims())
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d tilings of %d x %d tiles",
		t.NumTilings(), t.Resolutions()[x], t.Resolutions()[y])
	p.X.Label.Text = fmt.Sprintf("dimension %d", x)
	p.Y.Label.Text = fmt.Sprintf("dimension %d", y)

	limits := t.Limits()
	p.X.Min, p.X.Max = limits[x].Min, limits[x].Max
	p.Y.Min, p.Y.Max = limits[y].Min, limits[y].Max

	for tiling := 0; tiling < t.NumTilings(); tiling++ {
		if err := addGrid(p, t, tiling, x, y); err != nil {
			return nil, err
		}
	}

	if len(points) > 0 {
		if err := addPoints(p, t, x, y, points); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Save plots the tilings of a TileCoder as in Tilings and saves the
// plot to a file. The format is given by the file extension.
func Save(filename string, t *tilecoder.TileCoder, x, y int,
	points [][]float64) error {
	p, err := Tilings(t, x, y, points)
	if err != nil {
		return err
	}
	return p.Save(Size, Size, filename)
}

// addGrid adds the tile boundaries of a single tiling to a plot
func addGrid(p *plot.Plot, t *tilecoder.TileCoder, tiling, x, y int) error {
	xEdges, err := t.Edges(tiling, x)
	if err != nil {
		return err
	}
	yEdges, err := t.Edges(tiling, y)
	if err != nil {
		return err
	}
	xMin, xMax := xEdges[0], xEdges[len(xEdges)-1]
	yMin, yMax := yEdges[0], yEdges[len(yEdges)-1]

	var segments []plotter.XYs
	for _, e := range xEdges {
		segments = append(segments, plotter.XYs{{X: e, Y: yMin}, {X: e, Y: yMax}})
	}
	for _, e := range yEdges {
		segments = append(segments, plotter.XYs{{X: xMin, Y: e}, {X: xMax, Y: e}})
	}

	colour := plotutil.Color(tiling)
	for i, seg := range segments {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return fmt.Errorf("addGrid: %w", err)
		}
		line.LineStyle.Color = colour
		line.LineStyle.Width = vg.Points(0.5)
		p.Add(line)

		if i == 0 {
			p.Legend.Add(fmt.Sprintf("tiling %d", tiling), line)
		}
	}
	return nil
}

// addPoints adds points and the outlines of their active tiles to a
// plot
func addPoints(p *plot.Plot, t *tilecoder.TileCoder, x, y int,
	points [][]float64) error {
	indices, err := t.Encode(points)
	if err != nil {
		return fmt.Errorf("addPoints: %w", err)
	}

	xys := make(plotter.XYs, len(points))
	for i, point := range points {
		xys[i] = plotter.XY{X: point[x], Y: point[y]}

		for tiling, index := range indices[i] {
			bounds, err := t.TileBounds(index)
			if err != nil {
				// Extrapolated indices need not name a real tile
				continue
			}
			outline, err := plotter.NewLine(plotter.XYs{
				{X: bounds[x].Min, Y: bounds[y].Min},
				{X: bounds[x].Max, Y: bounds[y].Min},
				{X: bounds[x].Max, Y: bounds[y].Max},
				{X: bounds[x].Min, Y: bounds[y].Max},
				{X: bounds[x].Min, Y: bounds[y].Min},
			})
			if err != nil {
				return fmt.Errorf("addPoints: %w", err)
			}
			outline.LineStyle.Color = plotutil.Color(tiling)
			outline.LineStyle.Width = vg.Points(2)
			p.Add(outline)
		}
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("addPoints: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("points", scatter)
	return nil
}
