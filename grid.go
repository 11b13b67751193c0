package gridview

import (
	"image"
	"image/color"
)

// Grid is a fixed-size two-dimensional array of colors addressed by
// (column, row). Column 0 is the left edge and row 0 the top edge.
//
// A Grid is written by its producer and read by the renderer. It must not be
// modified while a render is in progress.
type Grid struct {
	columns int
	rows    int
	cells   []Color // row-major: index = row*columns + col
}

// NewGrid creates a grid with every cell set to Transparent.
func NewGrid(columns, rows int) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]Color, columns*rows),
	}, nil
}

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether (col, row) addresses a cell of g.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.columns && row >= 0 && row < g.rows
}

// Cell returns the color at (col, row). The second result is false when the
// address is outside the grid.
func (g *Grid) Cell(col, row int) (Color, bool) {
	if !g.Contains(col, row) {
		return Color{}, false
	}
	return g.cells[row*g.columns+col], true
}

// Set stores c at (col, row) and reports whether the address was valid.
func (g *Grid) Set(col, row int, c Color) bool {
	if !g.Contains(col, row) {
		return false
	}
	g.cells[row*g.columns+col] = c
	return true
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Color) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// At implements the image.Image interface.
func (g *Grid) At(x, y int) color.Color {
	c, ok := g.Cell(x, y)
	if !ok {
		return Transparent
	}
	return c
}

// Bounds implements the image.Image interface.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.columns, g.rows)
}

// ColorModel implements the image.Image interface.
func (g *Grid) ColorModel() color.Model {
	return color.NRGBAModel
}

// GridFromImage creates a grid with one cell per image pixel.
func GridFromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	g, err := NewGrid(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if n, ok := img.(*image.NRGBA); ok {
		for y := range g.rows {
			src := n.Pix[y*n.Stride : y*n.Stride+g.columns*4]
			dst := g.cells[y*g.columns : (y+1)*g.columns]
			for x := range dst {
				dst[x] = Color{R: src[x*4], G: src[x*4+1], B: src[x*4+2], A: src[x*4+3]}
			}
		}
		return g, nil
	}

	for y := range g.rows {
		for x := range g.columns {
			g.cells[y*g.columns+x] = ColorFrom(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return g, nil
}
