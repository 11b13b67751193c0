// Package gridgen produces grids for demos and test fixtures.
//
// The default demo grid is a field of random opaque colors with one solid
// marker column, so that the orientation of the rendered image is visible at
// a glance:
//
//	g, err := gridgen.Random(100, 100, gridgen.WithSeed(7))
package gridgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/gogpu/gridview"
)

// Marker selects which column of a random grid is painted solid.
type Marker uint8

const (
	// MarkerFirstColumn paints column 0.
	MarkerFirstColumn Marker = iota

	// MarkerLastColumn paints column columns-1.
	MarkerLastColumn

	// MarkerNone leaves every column random.
	MarkerNone
)

// String returns the name accepted by ParseMarker.
func (m Marker) String() string {
	switch m {
	case MarkerFirstColumn:
		return "first"
	case MarkerLastColumn:
		return "last"
	case MarkerNone:
		return "none"
	default:
		return fmt.Sprintf("Marker(%d)", m)
	}
}

// ParseMarker parses "first", "last" or "none". The empty string is "first".
func ParseMarker(s string) (Marker, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return MarkerFirstColumn, nil
	case "last":
		return MarkerLastColumn, nil
	case "none":
		return MarkerNone, nil
	default:
		return 0, fmt.Errorf("gridgen: unknown marker %q", s)
	}
}

// Option configures Random.
type Option func(*options)

type options struct {
	seed        uint64
	seeded      bool
	marker      Marker
	markerColor gridview.Color
}

// WithSeed makes Random deterministic. Without it every call differs.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithMarker selects the marker column. The default is MarkerFirstColumn.
func WithMarker(m Marker) Option {
	return func(o *options) {
		o.marker = m
	}
}

// WithMarkerColor sets the marker column color. The default is gridview.Red.
func WithMarkerColor(c gridview.Color) Option {
	return func(o *options) {
		o.markerColor = c
	}
}

// Random returns a columns × rows grid of random opaque colors with a
// marker column.
func Random(columns, rows int, opts ...Option) (*gridview.Grid, error) {
	o := options{markerColor: gridview.Red}
	for _, opt := range opts {
		opt(&o)
	}

	g, err := gridview.NewGrid(columns, rows)
	if err != nil {
		return nil, err
	}

	seed := o.seed
	if !o.seeded {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	marker := -1
	switch o.marker {
	case MarkerFirstColumn:
		marker = 0
	case MarkerLastColumn:
		marker = columns - 1
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if col == marker {
				g.Set(col, row, o.markerColor)
				continue
			}
			v := rng.Uint32()
			g.Set(col, row, gridview.RGB(uint8(v), uint8(v>>8), uint8(v>>16)))
		}
	}

	gridview.Logger().Debug("random grid generated",
		"columns", columns, "rows", rows, "seed", seed, "marker", o.marker.String())
	return g, nil
}

// Checker returns a columns × rows checkerboard of squares size cells wide,
// starting with a in the top-left corner. A size below 1 is treated as 1.
func Checker(columns, rows, size int, a, b gridview.Color) (*gridview.Grid, error) {
	g, err := gridview.NewGrid(columns, rows)
	if err != nil {
		return nil, err
	}
	size = max(size, 1)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			c := a
			if (col/size+row/size)%2 == 1 {
				c = b
			}
			g.Set(col, row, c)
		}
	}
	return g, nil
}
