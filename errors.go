package gridview

import "errors"

// Common errors returned by gridview.
var (
	// ErrInvalidDimensions is returned when a grid or canvas size is not positive.
	ErrInvalidDimensions = errors.New("gridview: invalid dimensions")

	// ErrInvalidZoomFactor is returned when a zoom factor is not a positive finite number.
	ErrInvalidZoomFactor = errors.New("gridview: invalid zoom factor")

	// ErrInvalidScale is returned when a scale is not a positive finite number.
	ErrInvalidScale = errors.New("gridview: invalid scale")

	// ErrEmptyData is returned when grid image data is empty.
	ErrEmptyData = errors.New("gridview: empty data")

	// ErrUnsupportedFormat is returned for snapshot formats other than PNG and BMP.
	ErrUnsupportedFormat = errors.New("gridview: unsupported format")
)
