package gridview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Pixmap is a rectangular RGBA pixel buffer: 4 bytes per pixel in R, G, B, A
// order, rows top to bottom, pixels left to right within a row.
type Pixmap struct {
	width   int
	height  int
	data    []uint8
	scratch []int // per-column source indices, reused by RenderTo
}

// NewPixmap creates a new pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	p := &Pixmap{}
	p.Resize(width, height)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data. Its length is always Width()*Height()*4.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Resize changes the dimensions, reusing the existing allocation when it is
// large enough. Pixel contents are undefined until the next render.
func (p *Pixmap) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height * 4
	if cap(p.data) >= n {
		p.data = p.data[:n]
	} else {
		p.data = make([]uint8, n)
	}
	p.width, p.height = width, height
}

// Pixel returns the color of a single pixel, or Transparent outside the pixmap.
func (p *Pixmap) Pixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Format is an image encoding for snapshots.
type Format uint8

const (
	FormatPNG Format = iota
	FormatBMP
)

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// FormatFromPath picks a Format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes the pixmap to w in the given format.
func (p *Pixmap) Encode(w io.Writer, f Format) error {
	img := p.ToImage()
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("gridview: encode %v: %w", f, err)
	}
	return nil
}

// Save writes the pixmap to a file, choosing PNG or BMP by extension.
func (p *Pixmap) Save(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("gridview: create file: %w", err)
	}
	if err := p.Encode(out, f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
