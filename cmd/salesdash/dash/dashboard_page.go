package dash

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/contest"
	"salesdash/internal/erp"
	"salesdash/internal/report"
	"salesdash/internal/viewmodel"
)

// Compact-table sizes on the overview page.
const (
	miniSalesPageSize     = 3
	miniTeamPageSize      = 5
	miniCustomersPageSize = 5
	miniContestPageSize   = 5
)

// dashLoadedMsg delivers everything the overview shows in one message.
type dashLoadedMsg struct {
	seq        int
	totalSales float64
	sales      []SaleRow
	team       []CustomerRow
	err        error
}

// dashboardPage is the manager overview: one scrollable viewport stacking
// the sales metric, compact tables and the monthly chart.
type dashboardPage struct {
	app *App

	vp      viewport.Model
	ready   bool
	loading bool
	loadSeq int

	totalSales float64
	sales      *viewmodel.Table[SaleRow]
	team       *viewmodel.Table[CustomerRow]
	contests   *viewmodel.Table[contest.Row]

	spin    spinner.Model
	errText string
}

func newDashboardPage(app *App) *dashboardPage {
	p := &dashboardPage{app: app}
	p.sales = viewmodel.NewTable[SaleRow](miniSalesPageSize)
	p.team = viewmodel.NewTable[CustomerRow](miniTeamPageSize)
	p.contests = viewmodel.NewTable[contest.Row](miniContestPageSize)
	p.contests.SetRows(contest.Rows())

	p.spin = spinner.New()
	p.spin.Spinner = spinner.Dot
	p.spin.Style = app.Styles.Spinner
	return p
}

func (p *dashboardPage) Init() tea.Cmd {
	return p.reload()
}

func (p *dashboardPage) reload() tea.Cmd {
	p.loading = true
	p.errText = ""
	p.loadSeq++
	seq := p.loadSeq
	client := p.app.Client

	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()

		total, err := client.TotalSales(ctx)
		if err != nil {
			return dashLoadedMsg{seq: seq, err: err}
		}

		sales, err := client.ListSales(ctx)
		if err != nil {
			return dashLoadedMsg{seq: seq, err: err}
		}

		employees, err := client.ListEmployees(ctx)
		if err != nil {
			return dashLoadedMsg{seq: seq, err: err}
		}
		totals, _ := viewmodel.Join(ctx, employees,
			func(ctx context.Context, e erp.Employee) (float64, error) {
				return client.TotalSalesFor(ctx, e.ID)
			}, viewmodel.DefaultJoinLimit)
		team := make([]CustomerRow, len(employees))
		for i, e := range employees {
			team[i] = CustomerRow{Name: e.User.Name, Email: e.User.Email, Total: totals[i]}
		}

		return dashLoadedMsg{
			seq:        seq,
			totalSales: total,
			sales:      buildSaleRows(sales),
			team:       team,
		}
	}
	return tea.Batch(p.spin.Tick, load)
}

func (p *dashboardPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 2
		h := msg.Height - ui.HeaderHeight - ui.NavHeight - ui.FooterHeight
		if h < 4 {
			h = 4
		}
		if !p.ready {
			p.vp = viewport.New(w, h)
			p.ready = true
		} else {
			p.vp.Width = w
			p.vp.Height = h
		}
		p.vp.SetContent(p.content())
		return nil

	case dashLoadedMsg:
		if msg.seq != p.loadSeq {
			return nil
		}
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
		} else {
			p.totalSales = msg.totalSales
			p.sales.SetRows(msg.sales)
			p.team.SetRows(msg.team)
		}
		if p.ready {
			p.vp.SetContent(p.content())
		}
		return nil

	case spinner.TickMsg:
		if !p.loading {
			return nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		if p.ready {
			p.vp.SetContent(p.content())
		}
		return cmd

	case tea.KeyMsg:
		if msg.String() == "r" && !p.loading {
			return p.reload()
		}
		if p.ready {
			var cmd tea.Cmd
			p.vp, cmd = p.vp.Update(msg)
			return cmd
		}
	}
	return nil
}

// content builds the full overview; the viewport handles scrolling.
func (p *dashboardPage) content() string {
	s := p.app.Styles

	var b strings.Builder
	if sess := p.app.Session.Current(); sess != nil {
		b.WriteString(fmt.Sprintf("Welcome back, %s!", sess.User.Name))
		b.WriteString("\n\n")
	}

	switch {
	case p.loading:
		b.WriteString(p.spin.View() + " loading overview...")
		return b.String()
	case p.errText != "":
		b.WriteString(s.Error.Render("could not load overview: " + p.errText))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("press r to retry"))
		return b.String()
	}

	metric := s.Card.Render(
		s.FormLabel.Render("Total Sales") + "\n" +
			s.Money.Render(fmt.Sprintf("$%.2f", p.totalSales)))
	b.WriteString(metric)
	b.WriteString("\n\n")

	recent := ui.NewDataTable("Recent Sales", "Product", "Amount", "Qty", "Date")
	recent.AlignRight(1)
	recent.AlignRight(2)
	for _, r := range p.sales.Page() {
		recent.AddRow(r.Product, fmt.Sprintf("%.2f", r.Amount), fmt.Sprintf("%d", r.Quantity), r.Date)
	}

	team := ui.NewDataTable("Team", "Name", "Email", "Total Sales")
	team.AlignRight(2)
	for _, r := range p.team.Page() {
		team.AddRow(r.Name, r.Email, fmt.Sprintf("%.2f", r.Total))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, recent.View(s), "   ", team.View(s)))
	b.WriteString("\n")

	contests := ui.NewDataTable("Contest Status", "Team", "Contest", "Target", "Status")
	for _, r := range p.contests.Page() {
		contests.AddRow(r.Team, r.Contest, r.Target, r.Status)
	}
	b.WriteString(contests.View(s))
	b.WriteString("\n")

	chart := ui.BarChart{Title: "Monthly Sales", MaxWidth: ui.ChartBarMaxWidth}
	for _, m := range report.MonthlySales() {
		chart.Labels = append(chart.Labels, m.Month)
		chart.Values = append(chart.Values, m.Amount)
	}
	b.WriteString(chart.View(s))
	return b.String()
}

func (p *dashboardPage) View(width, height int) string {
	if !p.ready {
		p.vp = viewport.New(width-2, height)
		p.ready = true
		p.vp.SetContent(p.content())
	}
	return p.vp.View()
}
