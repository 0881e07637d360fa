package picker

import "testing"

func TestRange_Count(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want int
	}{
		{"unit step", NewRange(1, 10), 10},
		{"single value", NewRange(5, 5), 1},
		{"step of five", NewSteppedRange(0, 59, 5), 12},
		{"step not dividing span", NewSteppedRange(0, 10, 3), 4},
		{"degenerate", NewRange(10, 1), 0},
		{"explicit values", NewValueRange(10, 12, 14), 3},
		{"zero step treated as one", Range{Begin: 1, End: 3}, 3},
	}

	for _, tt := range tests {
		if got := tt.r.Count(); got != tt.want {
			t.Errorf("%s: Count() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestRange_RoundTrip(t *testing.T) {
	r := NewRange(1900, 2100)
	for i := 0; i < r.Count(); i++ {
		if got := r.IndexOf(r.ValueAt(i)); got != i {
			t.Fatalf("IndexOf(ValueAt(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestRange_ExplicitValues(t *testing.T) {
	r := NewValueRange(10, 12, 14)

	tests := []struct {
		value int
		want  int
	}{
		{10, 0},
		{12, 1},
		{14, 2},
		{15, IndexNotFound},
		{9, IndexNotFound},
	}

	for _, tt := range tests {
		if got := r.IndexOf(tt.value); got != tt.want {
			t.Errorf("IndexOf(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}

	if got := r.ValueAt(1); got != 12 {
		t.Errorf("ValueAt(1) = %d, want 12", got)
	}
}

func TestRange_IndexOfMisaligned(t *testing.T) {
	r := NewSteppedRange(0, 30, 10)

	if got := r.IndexOf(15); got != IndexNotFound {
		t.Errorf("IndexOf(15) = %d, want IndexNotFound", got)
	}
	if got := r.IndexOf(31); got != IndexNotFound {
		t.Errorf("IndexOf(31) = %d, want IndexNotFound", got)
	}
	if got := r.IndexOf(20); got != 2 {
		t.Errorf("IndexOf(20) = %d, want 2", got)
	}
}
