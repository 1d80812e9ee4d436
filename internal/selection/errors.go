package selection

import (
	"errors"
	"fmt"
)

// ErrEmptyContainer is returned when the ICO file holds no images at all;
// no selection against it is meaningful.
var ErrEmptyContainer = errors.New("no images found in the ico file")

// IndexError reports a single or list index outside the container bounds.
type IndexError struct {
	Index int
	Total int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid image index %d (file has %d images, valid: 0-%d)", e.Index, e.Total, e.Total-1)
}

// RangeFormatError reports range text that is not two dash-separated
// non-negative integers.
type RangeFormatError struct {
	Text string
}

func (e *RangeFormatError) Error() string {
	return fmt.Sprintf("invalid range %q (use start-end, e.g. 0-3)", e.Text)
}

// InvalidRangeError reports a range whose start exceeds its end. Inverted
// ranges are never swapped or treated as empty.
type InvalidRangeError struct {
	Start int
	End   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %d-%d (start must not exceed end)", e.Start, e.End)
}

// RangeBoundsError reports a well-formed range that runs past the container.
type RangeBoundsError struct {
	Start int
	End   int
	Total int
}

func (e *RangeBoundsError) Error() string {
	return fmt.Sprintf("range %d-%d out of bounds (file has %d images, valid: 0-%d)", e.Start, e.End, e.Total, e.Total-1)
}
