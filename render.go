package gridview

import "math"

// Render rasterizes the part of grid visible through vp into a new
// width*height*4 byte RGBA buffer. Negative dimensions are treated as zero.
//
// Each canvas pixel (cx, cy) samples the single cell
//
//	(floor((cx+offset.X)/scale), floor((cy+offset.Y)/scale))
//
// and is written as that cell's color, or OffGrid when the cell lies outside
// the grid. A nil grid renders entirely OffGrid.
func Render(grid *Grid, vp Viewport, width, height int) []byte {
	pm := NewPixmap(width, height)
	RenderTo(pm, grid, vp)
	return pm.Data()
}

// RenderTo rasterizes into pm using pm's current dimensions, overwriting
// every byte. It has the same sampling rules as Render.
func RenderTo(pm *Pixmap, grid *Grid, vp Viewport) {
	w, h := pm.width, pm.height
	if w == 0 || h == 0 {
		return
	}

	cols, rows := 0, 0
	if grid != nil {
		cols, rows = grid.columns, grid.rows
	}
	scale, off := vp.Scale(), vp.Offset()

	// The source column depends only on cx and the source row only on cy.
	srcX := pm.lookup(w)
	for cx := range srcX {
		srcX[cx] = sourceIndex(cx, off.X, scale, cols)
	}

	data := pm.data
	for cy := 0; cy < h; cy++ {
		row := data[cy*w*4 : (cy+1)*w*4]
		sy := sourceIndex(cy, off.Y, scale, rows)
		if sy < 0 {
			fillRow(row, OffGrid)
			continue
		}
		cells := grid.cells[sy*cols : (sy+1)*cols]
		for cx, sx := range srcX {
			c := OffGrid
			if sx >= 0 {
				c = cells[sx]
			}
			i := cx * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

// sourceIndex returns floor((c+offset)/scale), or -1 when that index is not
// in [0, n).
func sourceIndex(c int, offset, scale float64, n int) int {
	q := math.Floor((float64(c) + offset) / scale)
	if !(q >= 0 && q < float64(n)) { // also rejects NaN
		return -1
	}
	return int(q)
}

func fillRow(row []uint8, c Color) {
	for i := 0; i+3 < len(row); i += 4 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
	}
}

// lookup returns a scratch slice of n ints owned by p.
func (p *Pixmap) lookup(n int) []int {
	if cap(p.scratch) < n {
		p.scratch = make([]int, n)
	}
	return p.scratch[:n]
}
