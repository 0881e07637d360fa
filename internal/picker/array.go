package picker

// ArrayAdapter drives columns from an Option forest in one of two modes.
//
// Independent mode (NewArrayAdapter): each top-level option is one column
// and its Children are that column's flat item list; columns do not affect
// each other.
//
// Linked mode (NewLinkedAdapter): the forest's levels are the columns. The
// roots form column 0 and each deeper column's item list is the Children of
// the option selected one column to the left.
type ArrayAdapter struct {
	roots    []*Option
	linked   bool
	columns  int
	selected []int
}

// NewArrayAdapter creates an adapter over independent columns.
func NewArrayAdapter(columns []*Option) *ArrayAdapter {
	return &ArrayAdapter{
		roots:    columns,
		columns:  len(columns),
		selected: make([]int, len(columns)),
	}
}

// NewLinkedAdapter creates an adapter over a hierarchical tree. The column
// count is the depth of the deepest branch.
func NewLinkedAdapter(forest []*Option) *ArrayAdapter {
	levels := MaxLevel(forest)
	return &ArrayAdapter{
		roots:    forest,
		linked:   true,
		columns:  levels,
		selected: make([]int, levels),
	}
}

// Columns returns the adapter's column count.
func (a *ArrayAdapter) Columns() int { return a.columns }

// Linked reports whether columns depend on their left neighbor.
func (a *ArrayAdapter) Linked() bool { return a.linked }

// Items returns the current item list for a column. In linked mode it
// descends the tree along the selections left of col; a stale or
// out-of-range ancestor selection yields an empty list rather than an
// error, so the host can recover by redrawing.
func (a *ArrayAdapter) Items(col int) []*Option {
	if col < 0 || col >= a.columns {
		return nil
	}
	if !a.linked {
		return a.roots[col].Children
	}
	items := a.roots
	for level := 0; level < col; level++ {
		idx := a.selected[level]
		if idx < 0 || idx >= len(items) {
			return nil
		}
		items = items[idx].Children
	}
	return items
}

// Count returns the number of items in a column.
func (a *ArrayAdapter) Count(col int) int {
	return len(a.Items(col))
}

// Label returns the display text of one item, or "" when the row is out of
// range for the column's current items.
func (a *ArrayAdapter) Label(col, row int) string {
	items := a.Items(col)
	if row < 0 || row >= len(items) {
		return ""
	}
	return items[row].Text()
}

// SelectedIndex returns the column's selected row.
func (a *ArrayAdapter) SelectedIndex(col int) int {
	if col < 0 || col >= a.columns {
		return 0
	}
	return a.selected[col]
}

// Select records a settled selection. The item lists of linked descendant
// columns change wholesale when an ancestor moves, but that linkage is
// re-resolved on every Items call, so no rebuild signal is produced here;
// the controller re-renders downstream columns itself.
func (a *ArrayAdapter) Select(col, row int) Change {
	if col < 0 || col >= a.columns {
		return Change{}
	}
	a.selected[col] = row
	if a.linked {
		// Descendant selections may now exceed their new item lists.
		for level := col + 1; level < a.columns; level++ {
			if n := len(a.Items(level)); a.selected[level] >= n {
				a.selected[level] = 0
			}
		}
	}
	return Change{}
}

// NeedsRebuild always reports false: plain linkage is already handled by
// re-descending the tree, and the controller re-renders downstream columns
// after every upstream change.
func (a *ArrayAdapter) NeedsRebuild(col, changed int) bool { return false }

// SelectedValues walks the tree along the selection vector collecting each
// level's value. The walk stops silently at the first out-of-range index
// or childless node.
func (a *ArrayAdapter) SelectedValues() []any {
	values := make([]any, 0, a.columns)
	if !a.linked {
		for col := 0; col < a.columns; col++ {
			items := a.roots[col].Children
			idx := a.selected[col]
			if idx < 0 || idx >= len(items) {
				break
			}
			values = append(values, items[idx].Value)
		}
		return values
	}
	items := a.roots
	for col := 0; col < a.columns; col++ {
		idx := a.selected[col]
		if idx < 0 || idx >= len(items) {
			break
		}
		node := items[idx]
		values = append(values, node.Value)
		if !node.HasChildren() {
			break
		}
		items = node.Children
	}
	return values
}
