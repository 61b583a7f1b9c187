package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DataTable renders tabular data with the dashboard's striped look. Empty
// cells are filled with "N/A" to match the web tables; columns listed in
// RightAlign (by index) are right-aligned for amounts.
type DataTable struct {
	Title      string
	Headers    []string
	Rows       [][]string
	RightAlign map[int]bool
}

// NewDataTable creates a table with the given title and headers.
func NewDataTable(title string, headers ...string) *DataTable {
	return &DataTable{
		Title:   title,
		Headers: headers,
	}
}

// AddRow appends one row. Short rows are padded with empty cells.
func (t *DataTable) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	for i := range row {
		if i < len(cells) && cells[i] != "" {
			row[i] = cells[i]
		} else {
			row[i] = "N/A"
		}
	}
	t.Rows = append(t.Rows, row)
}

// AlignRight marks a column as right-aligned.
func (t *DataTable) AlignRight(col int) {
	if t.RightAlign == nil {
		t.RightAlign = make(map[int]bool)
	}
	t.RightAlign[col] = true
}

// View renders the table using the provided styles.
func (t *DataTable) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	for i := range widths {
		widths[i] += TableCellPadding
	}

	for i, h := range t.Headers {
		sb.WriteString(styles.TableHeader.Width(widths[i]).Render(strings.ToUpper(h)))
	}
	sb.WriteString("\n")

	if len(t.Rows) == 0 {
		sb.WriteString(styles.Muted.Render("  (no rows)"))
		sb.WriteString("\n")
		return sb.String()
	}

	for r, row := range t.Rows {
		cellStyle := styles.TableCell
		if r%2 == 0 {
			cellStyle = styles.TableStripe
		}
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			st := cellStyle.Width(widths[i])
			if t.RightAlign[i] {
				st = st.Align(lipgloss.Right)
			}
			sb.WriteString(st.Render(cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
