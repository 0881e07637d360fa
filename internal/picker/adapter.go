package picker

// Change reports the side effects of an adapter Select call so the
// controller can decide which columns the host must force-rebuild.
type Change struct {
	// Clamped means the adapter's whole model was clamped into its bounds;
	// every column's selection must be resynced and redrawn.
	Clamped bool

	// Stale lists columns whose item lists changed length as a consequence
	// of the selection (e.g. the day column after a month change).
	Stale []int
}

// Adapter supplies column content to a Controller. Every operation takes
// the column index explicitly; adapters hold no "current column" cursor,
// so calls need no particular ordering.
type Adapter interface {
	// Columns returns the number of columns the adapter drives.
	Columns() int

	// Count returns the number of items in a column.
	Count(col int) int

	// Label returns the display text for one item.
	Label(col, row int) string

	// SelectedIndex returns the column's currently selected row.
	SelectedIndex(col int) int

	// Select records that a column settled on a row, mutates the
	// underlying model and reports what else moved.
	Select(col, row int) Change

	// NeedsRebuild reports whether column col's rendered content is stale
	// after a change in column changed. When true for any column, the host
	// must rebuild every column, including the changed one.
	NeedsRebuild(col, changed int) bool

	// Linked reports whether a column's item list depends on the selection
	// of the column to its left.
	Linked() bool
}
