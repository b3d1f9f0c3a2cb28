package tilecoder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/utils/intutils"
)

// hashVector returns the mixed-radix weight of each dimension: the
// product of the resolutions of all lower dimensions. Both flatten and
// unflatten derive from these weights, which makes them exact inverses.
func hashVector(resolutions []int) []int {
	return intutils.ExclusiveProd(resolutions)
}

// flatten maps a cell coordinate to its index within a tiling
func (t *TileCoder) flatten(coord []int) int {
	index := 0
	for i, c := range coord {
		index += c * t.hashVec[i]
	}
	return index
}

// unflatten maps the index of a cell within a tiling back to its cell
// coordinate, stored in coord
func (t *TileCoder) unflatten(index int, coord []int) {
	for i := len(t.hashVec) - 1; i >= 0; i-- {
		coord[i] = index / t.hashVec[i]
		index %= t.hashVec[i]
	}
}

// locate splits a tile index into its tiling and its cell coordinate
// within that tiling, which is stored in coord
func (t *TileCoder) locate(index int, coord []int) (int, error) {
	if index < 0 || index >= t.nTiles {
		return 0, fmt.Errorf("%w: %d is not in [0, %d)", ErrInvalidIndex,
			index, t.nTiles)
	}
	tiling := index / t.tilingSize
	t.unflatten(index-t.baseIndices[tiling], coord)
	return tiling, nil
}

// Tiling returns the tiling that the tile index belongs to
func (t *TileCoder) Tiling(index int) (int, error) {
	if index < 0 || index >= t.nTiles {
		return 0, &Error{Op: "tiling", Err: fmt.Errorf("%w: %d is not in "+
			"[0, %d)", ErrInvalidIndex, index, t.nTiles)}
	}
	return index / t.tilingSize, nil
}

// TileCenter returns the center of the tile with the given index
func (t *TileCoder) TileCenter(index int) ([]float64, error) {
	coord := make([]int, t.Dims())
	tiling, err := t.locate(index, coord)
	if err != nil {
		return nil, &Error{Op: "tileCenter", Err: err}
	}

	center := make([]float64, t.Dims())
	for i := range center {
		center[i] = t.cellCenter(tiling, i, coord[i])
	}
	return center, nil
}

// TileBounds returns the extent of the tile with the given index along
// each dimension. Tiles on the edge of a shifted tiling may extend
// beyond the value range of the TileCoder.
func (t *TileCoder) TileBounds(index int) ([]r1.Interval, error) {
	coord := make([]int, t.Dims())
	tiling, err := t.locate(index, coord)
	if err != nil {
		return nil, &Error{Op: "tileBounds", Err: err}
	}

	bounds := make([]r1.Interval, t.Dims())
	for i := range bounds {
		bounds[i] = r1.Interval{
			Min: t.cellEdge(tiling, i, coord[i]),
			Max: t.cellEdge(tiling, i, coord[i]+1),
		}
	}
	return bounds, nil
}

// cellEdge returns the lower edge of cell c along dimension dim of a
// tiling, in input coordinates
func (t *TileCoder) cellEdge(tiling, dim, c int) float64 {
	return (float64(c)-t.offsets[tiling][dim])/t.norms[dim] +
		t.limits[dim].Min
}

// cellCenter returns the center of cell c along dimension dim of a
// tiling, in input coordinates
func (t *TileCoder) cellCenter(tiling, dim, c int) float64 {
	return (float64(c)+0.5-t.offsets[tiling][dim])/t.norms[dim] +
		t.limits[dim].Min
}

// Edges returns the boundaries between tiles of a tiling along a
// single dimension, in input coordinates. There is one more edge than
// there are tiles along the dimension.
func (t *TileCoder) Edges(tiling, dim int) ([]float64, error) {
	if tiling < 0 || tiling >= t.numTilings {
		return nil, &Error{Op: "edges", Err: fmt.Errorf("%w: no tiling %d "+
			"in %d tilings", ErrDimensionMismatch, tiling, t.numTilings)}
	}
	if dim < 0 || dim >= t.Dims() {
		return nil, &Error{Op: "edges", Err: fmt.Errorf("%w: no dimension "+
			"%d in %d dimensions", ErrDimensionMismatch, dim, t.Dims())}
	}

	edges := make([]float64, t.resolutions[dim]+1)
	for c := range edges {
		edges[c] = t.cellEdge(tiling, dim, c)
	}
	return edges, nil
}
