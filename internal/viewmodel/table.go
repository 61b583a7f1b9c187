package viewmodel

// Table is the paged, optionally filtered view over one table's row set.
// Each page of the UI owns its own Table; nothing is shared. Rendering a
// page is a pure function of (rows, filter, page size, page index): the
// visible slice is recomputed on every read and the index is re-clamped
// after every mutation, so a shrinking row set can never leave the view on
// a page past the end.
type Table[R any] struct {
	rows     []R
	filter   func(R) bool
	pageSize int
	page     int // 1-based
}

// NewTable creates an empty table with the given page size. Sizes below 1
// are coerced to 1.
func NewTable[R any](pageSize int) *Table[R] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Table[R]{pageSize: pageSize, page: 1}
}

// SetRows replaces the row set, keeping the current page index (clamped).
func (t *Table[R]) SetRows(rows []R) {
	t.rows = rows
	t.clamp()
}

// Rows returns the full, unfiltered row set.
func (t *Table[R]) Rows() []R { return t.rows }

// SetFilter installs a visibility predicate (nil clears it) and resets to
// the first page, mirroring what a changed search query does.
func (t *Table[R]) SetFilter(f func(R) bool) {
	t.filter = f
	t.page = 1
}

func (t *Table[R]) visible() []R {
	if t.filter == nil {
		return t.rows
	}
	out := make([]R, 0, len(t.rows))
	for _, r := range t.rows {
		if t.filter(r) {
			out = append(out, r)
		}
	}
	return out
}

// Len is the number of visible rows.
func (t *Table[R]) Len() int { return len(t.visible()) }

// PageSize returns the fixed page size.
func (t *Table[R]) PageSize() int { return t.pageSize }

// TotalPages is max(1, ceil(visible/pageSize)); an empty set still has one
// (empty) page.
func (t *Table[R]) TotalPages() int {
	n := len(t.visible())
	if n == 0 {
		return 1
	}
	return (n + t.pageSize - 1) / t.pageSize
}

// PageIndex returns the current 1-based page index, clamped.
func (t *Table[R]) PageIndex() int {
	t.clamp()
	return t.page
}

// SetPage moves to the given page, clamped into [1, TotalPages].
func (t *Table[R]) SetPage(n int) {
	t.page = n
	t.clamp()
}

// Next advances one page, saturating at the last.
func (t *Table[R]) Next() { t.SetPage(t.page + 1) }

// Prev goes back one page, saturating at the first.
func (t *Table[R]) Prev() { t.SetPage(t.page - 1) }

// Page returns the visible rows of the current page.
func (t *Table[R]) Page() []R {
	v := t.visible()
	t.clampAgainst(len(v))
	lo := (t.page - 1) * t.pageSize
	hi := lo + t.pageSize
	if hi > len(v) {
		hi = len(v)
	}
	if lo >= len(v) {
		return nil
	}
	return v[lo:hi]
}

// Replace swaps the first row matching the predicate for the given row,
// in place, leaving every other row where it was. Reports whether a match
// was found.
func (t *Table[R]) Replace(match func(R) bool, row R) bool {
	for i, r := range t.rows {
		if match(r) {
			t.rows[i] = row
			return true
		}
	}
	return false
}

// Remove deletes the first row matching the predicate, preserving the
// order of the rest, and re-clamps the page index.
func (t *Table[R]) Remove(match func(R) bool) bool {
	for i, r := range t.rows {
		if match(r) {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			t.clamp()
			return true
		}
	}
	return false
}

// Append adds a row at the end of the set.
func (t *Table[R]) Append(row R) {
	t.rows = append(t.rows, row)
}

func (t *Table[R]) clamp() {
	t.clampAgainst(len(t.visible()))
}

func (t *Table[R]) clampAgainst(visible int) {
	total := 1
	if visible > 0 {
		total = (visible + t.pageSize - 1) / t.pageSize
	}
	if t.page > total {
		t.page = total
	}
	if t.page < 1 {
		t.page = 1
	}
}
