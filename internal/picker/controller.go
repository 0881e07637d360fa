package picker

// Controller owns the per-column selection vector, routes scroll-settle
// events into its adapter and tells the host which column widgets must be
// force-rebuilt. All operations are synchronous reactions to events from a
// single UI stream; nothing here is safe for concurrent use.
type Controller struct {
	adapter Adapter

	selected []int

	// resetDescendants resets every column right of a changed column to
	// its first item.
	resetDescendants bool

	rebuildAll  bool
	rebuildCols map[int]struct{}
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithResetDescendants makes any column change reset every column to its
// right to selection zero.
func WithResetDescendants() ControllerOption {
	return func(c *Controller) { c.resetDescendants = true }
}

// NewController creates a controller over an adapter with the adapter's
// current selection.
func NewController(adapter Adapter, opts ...ControllerOption) *Controller {
	c := &Controller{
		adapter:     adapter,
		selected:    make([]int, adapter.Columns()),
		rebuildCols: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.syncSelection()
	return c
}

// Columns returns the column count.
func (c *Controller) Columns() int { return c.adapter.Columns() }

// Count returns the item count of a column.
func (c *Controller) Count(col int) int { return c.adapter.Count(col) }

// Label returns the display text of one item.
func (c *Controller) Label(col, row int) string { return c.adapter.Label(col, row) }

// IsSelected reports whether a row is the column's current selection.
func (c *Controller) IsSelected(col, row int) bool {
	return c.SelectedIndex(col) == row
}

// SelectedIndex returns the column's current selection.
func (c *Controller) SelectedIndex(col int) int {
	if col < 0 || col >= len(c.selected) {
		return 0
	}
	return c.selected[col]
}

// Selection returns a copy of the selection vector.
func (c *Controller) Selection() []int {
	return append([]int(nil), c.selected...)
}

// SetSelection seeds a column's selection before the first render. It
// bypasses rebuild signaling and must not be used once scroll events are
// flowing.
func (c *Controller) SetSelection(col, row int) {
	if col < 0 || col >= len(c.selected) {
		return
	}
	c.adapter.Select(col, row)
	c.syncSelection()
}

// OnColumnChanged is the sole mutating entry point: column col settled on
// row. It updates the selection vector, delegates to the adapter, and
// records which columns the host must force-rebuild:
//
//   - a wholesale clamp resyncs every selection and rebuilds everything;
//   - an adapter rebuild signal rebuilds every column, including the one
//     just changed (excluding it leaves a stale wheel on screen);
//   - a linked adapter rebuilds every column right of the change;
//   - otherwise only the changed column and any columns the adapter
//     reported stale are rebuilt.
func (c *Controller) OnColumnChanged(col, row int) {
	if col < 0 || col >= len(c.selected) || row < 0 {
		return
	}
	c.selected[col] = row
	change := c.adapter.Select(col, row)

	if c.resetDescendants {
		for i := col + 1; i < len(c.selected); i++ {
			c.adapter.Select(i, 0)
		}
	}
	c.syncSelection()

	switch {
	case change.Clamped:
		c.rebuildAll = true
	case c.anyNeedsRebuild(col):
		c.rebuildAll = true
	case c.adapter.Linked():
		// Downstream item lists come from a different subtree now.
		for i := col + 1; i < len(c.selected); i++ {
			c.rebuildCols[i] = struct{}{}
		}
	default:
		c.rebuildCols[col] = struct{}{}
		for _, s := range change.Stale {
			if s >= 0 && s < len(c.selected) {
				c.rebuildCols[s] = struct{}{}
			}
		}
	}
}

// TakeRebuilds drains the pending rebuild requests accumulated since the
// last call. all means every column widget must be recreated; otherwise
// cols lists the stale ones in ascending order.
func (c *Controller) TakeRebuilds() (all bool, cols []int) {
	all = c.rebuildAll
	c.rebuildAll = false
	if all {
		for k := range c.rebuildCols {
			delete(c.rebuildCols, k)
		}
		return true, nil
	}
	for i := 0; i < len(c.selected); i++ {
		if _, ok := c.rebuildCols[i]; ok {
			cols = append(cols, i)
			delete(c.rebuildCols, i)
		}
	}
	return false, cols
}

// anyNeedsRebuild asks the adapter, for every column, whether the change
// in column changed left it stale.
func (c *Controller) anyNeedsRebuild(changed int) bool {
	for col := 0; col < c.adapter.Columns(); col++ {
		if c.adapter.NeedsRebuild(col, changed) {
			return true
		}
	}
	return false
}

// syncSelection mirrors the adapter's selection into the controller's
// vector, clamping against current item counts.
func (c *Controller) syncSelection() {
	for col := range c.selected {
		c.selected[col] = clampIndex(c.adapter.SelectedIndex(col), c.adapter.Count(col))
	}
}
