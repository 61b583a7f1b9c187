package dash

import (
	"github.com/charmbracelet/glamour"

	"salesdash/internal/logging"
)

const helpMarkdown = `# SalesDash

A terminal dashboard for the sales ERP.

## Pages

| Key | Page | What's there |
|-----|------|--------------|
| 1 | Dashboard | totals, top seller, recent sales, team and customer snapshots |
| 2 | Performance | quarterly target gauges and the off-track list |
| 3 | Sales Contest | leaderboard, weekly progress, department participation |
| 4 | Sales | every sale with amount, quantity and date, month filter |
| 5 | Team | employee list with incentives and totals, add/edit/delete |

## Keys

* ` + "`n` / `p`" + ` next / previous page of the visible table
* ` + "`/`" + ` focus the search or month filter
* ` + "`r`" + ` reload the visible page from the API
* ` + "`y`" + ` copy the selected team row to the clipboard
* ` + "`ctrl+l`" + ` log out, ` + "`q`" + ` or ` + "`ctrl+c`" + ` quit

Press ` + "`?`" + ` again to close this screen.
`

// renderHelp renders the markdown help once per size change; glamour is
// slow enough that we cache the result on the root model.
func renderHelp(width int) string {
	w := width - 4
	if w < 40 {
		w = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		logging.ViewWarn("help renderer: %v", err)
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		logging.ViewWarn("help render: %v", err)
		return helpMarkdown
	}
	return out
}
