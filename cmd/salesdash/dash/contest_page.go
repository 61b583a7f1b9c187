package dash

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/contest"
	"salesdash/internal/viewmodel"
)

// leaderboardItem adapts a contest entry to the bubbles list.
type leaderboardItem struct {
	entry contest.LeaderboardEntry
}

func (i leaderboardItem) Title() string {
	if i.entry.Highlight {
		return "★ " + i.entry.Name
	}
	return i.entry.Name
}

func (i leaderboardItem) Description() string {
	return "target " + i.entry.Target + ", achieved " + i.entry.Achieved
}

func (i leaderboardItem) FilterValue() string { return i.entry.Name }

type contestPage struct {
	app *App

	board list.Model
	table *viewmodel.Table[contest.Row]
}

func newContestPage(app *App) *contestPage {
	p := &contestPage{app: app}

	var items []list.Item
	for _, e := range contest.Leaderboard() {
		items = append(items, leaderboardItem{entry: e})
	}
	p.board = list.New(items, list.NewDefaultDelegate(), 44, 14)
	p.board.Title = "Leaderboard"
	p.board.SetShowStatusBar(false)
	p.board.SetFilteringEnabled(false)
	p.board.SetShowHelp(false)

	p.table = viewmodel.NewTable[contest.Row](5)
	p.table.SetRows(contest.Rows())
	return p
}

// Init is immediate: contest data ships with the binary.
func (p *contestPage) Init() tea.Cmd { return nil }

func (p *contestPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "n", "right":
			p.table.Next()
			return nil
		case "p", "left":
			p.table.Prev()
			return nil
		}
		var cmd tea.Cmd
		p.board, cmd = p.board.Update(msg)
		return cmd
	}
	return nil
}

func (p *contestPage) View(width int) string {
	s := p.app.Styles

	tbl := ui.NewDataTable("Contests", "Team", "Contest", "Target", "Status")
	for _, r := range p.table.Page() {
		status := r.Status
		switch r.Status {
		case "Complete":
			status = s.Success.Render(r.Status)
		case "Ongoing":
			status = s.Info.Render(r.Status)
		}
		tbl.AddRow(r.Team, r.Contest, r.Target, status)
	}

	progress := ui.BarChart{Title: "Contest Progress", MaxWidth: ui.ChartBarMaxWidth}
	for _, pt := range contest.Progress() {
		progress.Labels = append(progress.Labels, pt.Week)
		progress.Values = append(progress.Values, pt.Value)
	}

	participation := ui.BarChart{Title: "Participation by Department", MaxWidth: ui.ChartBarMaxWidth, Cycle: true}
	for _, d := range contest.DepartmentParticipation() {
		participation.Labels = append(participation.Labels, d.Department)
		participation.Values = append(participation.Values, d.Value)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		tbl.View(s),
		ui.RenderPager(s, p.table.PageIndex(), p.table.TotalPages()),
		"",
		progress.View(s),
		participation.View(s),
	)

	var b strings.Builder
	b.WriteString(s.Title.Render("Sales Contest"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", p.board.View()))
	return b.String()
}
