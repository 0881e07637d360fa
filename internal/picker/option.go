package picker

import "fmt"

// Option is one selectable entry in a column. A non-empty Children list
// makes the option a branch in a hierarchical tree: its children form the
// item list of the next column while this option is selected. An option
// with an empty Children list behaves identically to one with none.
type Option struct {
	Label    string
	Value    any
	Children []*Option
}

// NewOption creates an option whose value doubles as its label.
func NewOption(label string, children ...*Option) *Option {
	return &Option{Label: label, Value: label, Children: children}
}

// HasChildren reports whether the option opens a sub-column.
func (o *Option) HasChildren() bool {
	return o != nil && len(o.Children) > 0
}

// Text returns the option's display label, falling back to a formatted
// value when no label was set.
func (o *Option) Text() string {
	if o == nil {
		return ""
	}
	if o.Label != "" {
		return o.Label
	}
	if o.Value != nil {
		return fmt.Sprintf("%v", o.Value)
	}
	return ""
}

// MaxLevel returns the depth of the deepest chain of non-empty Children
// links in the forest, plus one. An empty forest has level zero.
func MaxLevel(forest []*Option) int {
	max := 0
	for _, o := range forest {
		if o == nil {
			continue
		}
		depth := 1
		if o.HasChildren() {
			depth += MaxLevel(o.Children)
		}
		if depth > max {
			max = depth
		}
	}
	return max
}
