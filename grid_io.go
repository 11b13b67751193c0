package gridview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp" // register BMP decoder
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadOption configures grid decoding.
type LoadOption func(*loadOptions)

type loadOptions struct {
	columns, rows int
}

// WithFit resamples the decoded image to exactly columns × rows cells using
// nearest-neighbour sampling. Non-positive sizes are ignored.
func WithFit(columns, rows int) LoadOption {
	return func(o *loadOptions) {
		o.columns = columns
		o.rows = rows
	}
}

// LoadGrid loads a grid from an image file.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func LoadGrid(path string, opts ...LoadOption) (*Grid, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("gridview: open grid: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeGrid(f, opts...)
}

// LoadGridFromBytes decodes a grid from an in-memory image.
func LoadGridFromBytes(data []byte, opts ...LoadOption) (*Grid, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeGrid(bytes.NewReader(data), opts...)
}

// DecodeGrid decodes an image from r, auto-detecting the format, and converts
// it to a grid with one cell per pixel (or the WithFit size).
func DecodeGrid(r io.Reader, opts ...LoadOption) (*Grid, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("gridview: decode grid: %w", err)
	}

	if o.columns > 0 && o.rows > 0 {
		dst := image.NewNRGBA(image.Rect(0, 0, o.columns, o.rows))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}

	g, err := GridFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("gridview: %s grid: %w", format, err)
	}
	Logger().Debug("grid decoded", "format", format, "columns", g.columns, "rows", g.rows)
	return g, nil
}
