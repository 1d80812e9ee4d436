// Package selection resolves a user's selection request (single index,
// explicit list, inclusive range, or all) into an ordered set of valid
// entry indices against a container whose entry count is only known at
// runtime. Out-of-range indices are hard failures, never clamped.
package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode identifies which selection form a Request carries. The modes are
// mutually exclusive; the caller enforces that at most one is supplied.
type Mode int

const (
	ModeSingle Mode = iota // one index (default: 0)
	ModeList               // explicit index list, order and duplicates preserved
	ModeRange              // inclusive "start-end" textual range
	ModeAll                // every entry
)

// Request is one selection intent. Construct with Single, List, Range or All.
type Request struct {
	mode     Mode
	index    int
	indices  []int
	rawRange string
}

// Single selects exactly one entry by index.
func Single(index int) Request { return Request{mode: ModeSingle, index: index} }

// List selects the given indices in the given order. Duplicates are kept:
// asking for [2,2,0] converts entry 2 twice, then entry 0.
func List(indices []int) Request { return Request{mode: ModeList, indices: indices} }

// Range selects an inclusive index range from its "start-end" textual form.
// The text is validated during Resolve, once the entry count is known.
func Range(text string) Request { return Request{mode: ModeRange, rawRange: text} }

// All selects every entry in ascending order.
func All() Request { return Request{mode: ModeAll} }

// Mode returns the request's selection mode.
func (r Request) Mode() Mode { return r.mode }

// ParseList parses a comma-separated index list (e.g. "0,2,2") for the CLI.
// Order and duplicates are preserved. Non-integer or negative parts fail.
func ParseList(text string) ([]int, error) {
	parts := strings.Split(text, ",")
	indices := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid index %q in list (use non-negative integers, e.g. 0,2,5)", strings.TrimSpace(p))
		}
		indices = append(indices, n)
	}
	return indices, nil
}

// Resolve turns a request into the ordered indices to convert, validated
// against total. It fails on an empty container, malformed range text,
// inverted ranges, and any out-of-bounds index. The one vacuous exception
// is an explicitly empty List, which resolves to an empty set.
func Resolve(req Request, total int) ([]int, error) {
	if total == 0 {
		if req.mode == ModeList && len(req.indices) == 0 {
			return nil, nil
		}
		return nil, ErrEmptyContainer
	}

	switch req.mode {
	case ModeAll:
		indices := make([]int, total)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil

	case ModeRange:
		start, end, err := parseRange(req.rawRange)
		if err != nil {
			return nil, err
		}
		if start > end {
			return nil, &InvalidRangeError{Start: start, End: end}
		}
		if end >= total {
			return nil, &RangeBoundsError{Start: start, End: end, Total: total}
		}
		indices := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			indices = append(indices, i)
		}
		return indices, nil

	case ModeList:
		for _, i := range req.indices {
			if i < 0 || i >= total {
				return nil, &IndexError{Index: i, Total: total}
			}
		}
		out := make([]int, len(req.indices))
		copy(out, req.indices)
		return out, nil

	default: // ModeSingle
		if req.index < 0 || req.index >= total {
			return nil, &IndexError{Index: req.index, Total: total}
		}
		return []int{req.index}, nil
	}
}

// parseRange splits "start-end" into its two non-negative integer bounds.
// Anything else (missing dash, extra parts, non-integers) is a format error;
// bound ordering is checked by the caller.
func parseRange(text string) (start, end int, err error) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return 0, 0, &RangeFormatError{Text: text}
	}
	start, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || start < 0 {
		return 0, 0, &RangeFormatError{Text: text}
	}
	end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || end < 0 {
		return 0, 0, &RangeFormatError{Text: text}
	}
	return start, end, nil
}
