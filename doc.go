// Package gridview renders a large grid of colored cells into a fixed-size
// RGBA canvas and pans and zooms that canvas with touch gestures.
//
// # Overview
//
// A [Grid] holds the cells. A [Viewport] maps grid space to canvas space with
// a uniform scale and an offset. [Render] samples the grid through the
// viewport into a row-major RGBA byte buffer, one cell per canvas pixel with
// no interpolation. An [Interpreter] turns touch events into viewport updates:
// one finger pans, two fingers pinch-zoom about their centroid, anything else
// is rejected with a [Notice].
//
// [View] ties these together. It owns the grid, the viewport and the canvas
// size, re-renders whenever one of them changes, and hands each frame to its
// subscribed [Sink]s.
//
// # Quick Start
//
//	grid, _ := gridview.NewGrid(100, 100)
//	grid.Fill(gridview.White)
//
//	view, _ := gridview.NewView(grid, 800, 500,
//		gridview.WithSink(gridview.SinkFunc(func(buf []byte, w, h int) error {
//			return blit(buf, w, h)
//		})))
//
//	view.HandleTouch(gridview.TouchEvent{
//		Phase: gridview.PhaseStart,
//		Frame: gridview.TouchFrame{{ID: 1, Pos: gridview.TouchPos(gridview.Pt(10, 10))}},
//	})
//
// # Coordinate System
//
//   - Canvas origin (0,0) at top-left, X right, Y down, in pixels
//   - Grid cell (col, row) covers grid space [col, col+1) × [row, row+1)
//   - canvas = grid*scale - offset, grid = (canvas + offset)/scale
//
// Touch positions live in touch space, the canvas mirrored through its
// origin: convert canvas pixels with [TouchPos]. A touch-space movement is
// added to the offset, which moves the grid along with the finger. Converting from window or
// page coordinates is the input source's job.
package gridview
