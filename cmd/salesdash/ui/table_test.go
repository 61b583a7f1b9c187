package ui

import (
	"strings"
	"testing"
)

func TestDataTablePadsShortRows(t *testing.T) {
	tbl := NewDataTable("", "A", "B", "C")
	tbl.AddRow("only")

	out := tbl.View(DefaultStyles())
	if !strings.Contains(out, "only") {
		t.Fatalf("missing cell value in output:\n%s", out)
	}
	if !strings.Contains(out, "N/A") {
		t.Fatalf("short row not padded with N/A:\n%s", out)
	}
}

func TestDataTableBlankCellsBecomeNA(t *testing.T) {
	tbl := NewDataTable("", "Name", "Email")
	tbl.AddRow("Mina", "")

	out := tbl.View(DefaultStyles())
	if !strings.Contains(out, "N/A") {
		t.Fatalf("empty cell should render as N/A:\n%s", out)
	}
}

func TestDataTableEmptyState(t *testing.T) {
	tbl := NewDataTable("Team", "Name", "Email")
	out := tbl.View(DefaultStyles())
	if !strings.Contains(out, "(no rows)") {
		t.Fatalf("empty table should say so:\n%s", out)
	}
	if !strings.Contains(out, "Team") {
		t.Fatalf("title missing:\n%s", out)
	}
}

func TestDataTableUppercasesHeaders(t *testing.T) {
	tbl := NewDataTable("", "name")
	tbl.AddRow("x")
	out := tbl.View(DefaultStyles())
	if !strings.Contains(out, "NAME") {
		t.Fatalf("header not uppercased:\n%s", out)
	}
}

func TestRenderPager(t *testing.T) {
	out := RenderPager(DefaultStyles(), 2, 4)
	for _, want := range []string{"Prev", "Next", "1", "2", "3", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("pager missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPagerSinglePage(t *testing.T) {
	out := RenderPager(DefaultStyles(), 1, 1)
	if !strings.Contains(out, "1") {
		t.Fatalf("single page pager should still show the page:\n%s", out)
	}
}
