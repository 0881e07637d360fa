package picker

// IndexNotFound is returned by Range.IndexOf when a value has no index in the range.
const IndexNotFound = -1

// Range describes one numeric column as either an arithmetic progression
// (Begin..End by Step) or an explicit list of values. When Values is
// non-empty it is the sole source of truth for counting and index mapping.
type Range struct {
	Begin  int
	End    int
	Step   int   // minimum 1; zero is treated as 1
	Values []int // optional explicit value list
}

// NewRange returns a range covering begin..end with step 1.
func NewRange(begin, end int) Range {
	return Range{Begin: begin, End: end, Step: 1}
}

// NewSteppedRange returns a range covering begin..end by step.
func NewSteppedRange(begin, end, step int) Range {
	return Range{Begin: begin, End: end, Step: step}
}

// NewValueRange returns a range backed by an explicit value list.
func NewValueRange(values ...int) Range {
	return Range{Values: values}
}

// step normalizes the configured step to at least 1.
func (r Range) step() int {
	if r.Step < 1 {
		return 1
	}
	return r.Step
}

// Count returns the number of values in the range. A degenerate range
// (End < Begin, no explicit values) counts as zero.
func (r Range) Count() int {
	if len(r.Values) > 0 {
		return len(r.Values)
	}
	if r.End < r.Begin {
		return 0
	}
	return (r.End-r.Begin)/r.step() + 1
}

// ValueAt returns the value at the given index.
func (r Range) ValueAt(index int) int {
	if len(r.Values) > 0 {
		return r.Values[index]
	}
	return r.Begin + index*r.step()
}

// IndexOf returns the index of the given value, or IndexNotFound when the
// value is outside the range or not aligned to the step.
func (r Range) IndexOf(value int) int {
	if len(r.Values) > 0 {
		for i, v := range r.Values {
			if v == value {
				return i
			}
		}
		return IndexNotFound
	}
	if value < r.Begin || value > r.End {
		return IndexNotFound
	}
	if (value-r.Begin)%r.step() != 0 {
		return IndexNotFound
	}
	return (value - r.Begin) / r.step()
}
