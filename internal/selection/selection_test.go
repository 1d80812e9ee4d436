package selection

import (
	"errors"
	"testing"
)

func TestResolve_Single(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		total   int
		want    []int
		wantErr bool
	}{
		{"first entry", 0, 1, []int{0}, false},
		{"middle entry", 2, 5, []int{2}, false},
		{"last entry", 4, 5, []int{4}, false},
		{"index equals total", 5, 5, nil, true},
		{"index beyond total", 9, 5, nil, true},
		{"negative index", -1, 5, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(Single(tt.index), tt.total)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !sliceEqual(got, tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_SingleOutOfBounds_CarriesContext(t *testing.T) {
	_, err := Resolve(Single(9), 5)
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("want IndexError, got %v", err)
	}
	if ie.Index != 9 || ie.Total != 5 {
		t.Errorf("IndexError = {%d, %d}, want {9, 5}", ie.Index, ie.Total)
	}
}

func TestResolve_All(t *testing.T) {
	got, err := Resolve(All(), 3)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !sliceEqual(got, []int{0, 1, 2}) {
		t.Errorf("Resolve(All, 3) = %v, want [0 1 2]", got)
	}
}

func TestResolve_Range(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		total   int
		want    []int
		wantErr error // nil means success; checked with errors.As on type below
	}{
		{"plain range", "2-5", 10, []int{2, 3, 4, 5}, nil},
		{"single-entry range", "3-3", 10, []int{3}, nil},
		{"full range", "0-9", 10, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, nil},
		{"with spaces", " 1 - 2 ", 10, []int{1, 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(Range(tt.text), tt.total)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !sliceEqual(got, tt.want) {
				t.Errorf("Resolve(Range(%q), %d) = %v, want %v", tt.text, tt.total, got, tt.want)
			}
		})
	}
}

func TestResolve_RangeErrors(t *testing.T) {
	t.Run("inverted range is never swapped", func(t *testing.T) {
		_, err := Resolve(Range("5-2"), 10)
		var ire *InvalidRangeError
		if !errors.As(err, &ire) {
			t.Fatalf("want InvalidRangeError, got %v", err)
		}
		if ire.Start != 5 || ire.End != 2 {
			t.Errorf("InvalidRangeError = {%d, %d}, want {5, 2}", ire.Start, ire.End)
		}
	})

	t.Run("end past container", func(t *testing.T) {
		_, err := Resolve(Range("8-12"), 10)
		var rbe *RangeBoundsError
		if !errors.As(err, &rbe) {
			t.Fatalf("want RangeBoundsError, got %v", err)
		}
		if rbe.Start != 8 || rbe.End != 12 || rbe.Total != 10 {
			t.Errorf("RangeBoundsError = {%d, %d, %d}, want {8, 12, 10}", rbe.Start, rbe.End, rbe.Total)
		}
	})

	malformed := []string{"a-5", "5", "1-2-3", "", "-", "1-", "-5", "1.5-3", "-1-3"}
	for _, text := range malformed {
		t.Run("malformed "+text, func(t *testing.T) {
			_, err := Resolve(Range(text), 10)
			var rfe *RangeFormatError
			if !errors.As(err, &rfe) {
				t.Fatalf("Resolve(Range(%q)): want RangeFormatError, got %v", text, err)
			}
		})
	}
}

func TestResolve_List(t *testing.T) {
	t.Run("order and duplicates preserved", func(t *testing.T) {
		got, err := Resolve(List([]int{0, 2, 2}), 5)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if !sliceEqual(got, []int{0, 2, 2}) {
			t.Errorf("Resolve(List([0,2,2]), 5) = %v, want [0 2 2]", got)
		}
	})

	t.Run("descending order kept as given", func(t *testing.T) {
		got, err := Resolve(List([]int{4, 1, 3}), 5)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if !sliceEqual(got, []int{4, 1, 3}) {
			t.Errorf("Resolve(List([4,1,3]), 5) = %v, want [4 1 3]", got)
		}
	})

	t.Run("fail-fast on first out-of-bounds index", func(t *testing.T) {
		_, err := Resolve(List([]int{0, 9, 12}), 5)
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("want IndexError, got %v", err)
		}
		if ie.Index != 9 {
			t.Errorf("IndexError.Index = %d, want 9 (first offender)", ie.Index)
		}
	})
}

func TestResolve_EmptyContainer(t *testing.T) {
	requests := map[string]Request{
		"single": Single(0),
		"all":    All(),
		"range":  Range("0-0"),
		"list":   List([]int{0}),
	}
	for name, req := range requests {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(req, 0)
			if !errors.Is(err, ErrEmptyContainer) {
				t.Errorf("Resolve(%s, 0) error = %v, want ErrEmptyContainer", name, err)
			}
		})
	}

	t.Run("explicitly empty list is vacuously valid", func(t *testing.T) {
		got, err := Resolve(List(nil), 0)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Resolve(List(nil), 0) = %v, want empty", got)
		}
	})
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []int
		wantErr bool
	}{
		{"single", "3", []int{3}, false},
		{"ordered", "0,2,5", []int{0, 2, 5}, false},
		{"duplicates kept", "2,2,0", []int{2, 2, 0}, false},
		{"spaces tolerated", " 1, 2 ,3 ", []int{1, 2, 3}, false},
		{"negative rejected", "1,-2", nil, true},
		{"non-integer rejected", "1,x", nil, true},
		{"empty part rejected", "1,,2", nil, true},
		{"empty string rejected", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseList(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if !tt.wantErr && !sliceEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func sliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
