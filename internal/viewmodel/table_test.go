package viewmodel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("row-%02d", i)
	}
	return out
}

func TestTablePaging(t *testing.T) {
	tbl := NewTable[string](10)
	tbl.SetRows(rows(23))

	assert.Equal(t, 3, tbl.TotalPages())
	assert.Equal(t, 1, tbl.PageIndex())
	assert.Len(t, tbl.Page(), 10)

	tbl.Next()
	tbl.Next()
	assert.Equal(t, 3, tbl.PageIndex())
	assert.Len(t, tbl.Page(), 3)

	// Saturates at the last page.
	tbl.Next()
	assert.Equal(t, 3, tbl.PageIndex())

	tbl.SetPage(1)
	tbl.Prev()
	assert.Equal(t, 1, tbl.PageIndex())
}

func TestTableEmpty(t *testing.T) {
	tbl := NewTable[string](10)

	assert.Equal(t, 1, tbl.TotalPages())
	assert.Equal(t, 1, tbl.PageIndex())
	assert.Empty(t, tbl.Page())
}

func TestTablePageSizeCoerced(t *testing.T) {
	tbl := NewTable[string](0)
	tbl.SetRows(rows(3))
	assert.Equal(t, 3, tbl.TotalPages())
}

func TestTableFilterResetsPage(t *testing.T) {
	tbl := NewTable[string](5)
	tbl.SetRows(rows(20))
	tbl.SetPage(4)

	tbl.SetFilter(func(s string) bool { return s >= "row-10" })
	assert.Equal(t, 1, tbl.PageIndex())
	assert.Equal(t, 10, tbl.Len())
	assert.Equal(t, 2, tbl.TotalPages())

	tbl.SetFilter(nil)
	assert.Equal(t, 20, tbl.Len())
}

func TestTableShrinkReclamps(t *testing.T) {
	tbl := NewTable[string](10)
	tbl.SetRows(rows(21))
	tbl.SetPage(3)

	// Removing the only row of the last page pulls the index back.
	ok := tbl.Remove(func(s string) bool { return s == "row-20" })
	require.True(t, ok)
	assert.Equal(t, 2, tbl.PageIndex())
	assert.Len(t, tbl.Page(), 10)
}

func TestTableReplaceKeepsPosition(t *testing.T) {
	tbl := NewTable[string](10)
	tbl.SetRows(rows(5))

	ok := tbl.Replace(func(s string) bool { return s == "row-02" }, "changed")
	require.True(t, ok)
	assert.Equal(t, []string{"row-00", "row-01", "changed", "row-03", "row-04"}, tbl.Page())

	assert.False(t, tbl.Replace(func(s string) bool { return s == "absent" }, "x"))
}

func TestTableAppend(t *testing.T) {
	tbl := NewTable[string](2)
	tbl.SetRows(rows(2))

	tbl.Append("extra")
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 2, tbl.TotalPages())

	tbl.SetPage(2)
	assert.Equal(t, []string{"extra"}, tbl.Page())
}
