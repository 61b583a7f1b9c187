package dash

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/report"
)

type performancePage struct {
	app *App

	gauges []progress.Model
	teams  []report.TeamQuarter
}

func newPerformancePage(app *App) *performancePage {
	p := &performancePage{app: app, teams: report.QuarterlyPerformance()}
	for range p.teams {
		g := progress.New(progress.WithDefaultGradient(), progress.WithWidth(ui.GaugeWidth))
		p.gauges = append(p.gauges, g)
	}
	return p
}

func (p *performancePage) Init() tea.Cmd { return nil }

func (p *performancePage) Update(tea.Msg) tea.Cmd { return nil }

// rate turns "80%" into 0.80. Bad input renders an empty gauge rather
// than failing the page.
func rate(s string) float64 {
	n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil || n < 0 {
		return 0
	}
	if n > 100 {
		n = 100
	}
	return float64(n) / 100
}

func (p *performancePage) View(width int) string {
	s := p.app.Styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Performance Tracking"))
	b.WriteString("\n\n")

	for i, t := range p.teams {
		b.WriteString(s.FormLabel.Render(t.Team))
		b.WriteString("  ")
		b.WriteString(p.gauges[i].ViewAs(rate(t.Rate)))
		b.WriteString("  ")
		b.WriteString(s.Muted.Render(t.Rate))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tbl := ui.NewDataTable("Quarterly Results", "Team", "Achieved", "Target", "Rate", "Incentives")
	tbl.AlignRight(1)
	tbl.AlignRight(2)
	tbl.AlignRight(4)
	for _, t := range p.teams {
		tbl.AddRow(t.Team, t.Achieved, t.Target, t.Rate, t.Incentives)
	}
	b.WriteString(tbl.View(s))
	b.WriteString("\n")

	yearly := ui.PairedBarChart{Title: "Target vs Achieved", FirstLabel: "target", SecondLabel: "achieved"}
	for _, pt := range report.YearlySales() {
		yearly.Labels = append(yearly.Labels, pt.Month)
		yearly.First = append(yearly.First, pt.Target)
		yearly.Second = append(yearly.Second, pt.Achieved)
	}
	b.WriteString(yearly.View(s))
	b.WriteString("\n")

	incentives := ui.BarChart{Title: "Incentive Payouts", MaxWidth: ui.ChartBarMaxWidth, Cycle: true}
	for _, pt := range report.Incentives() {
		incentives.Labels = append(incentives.Labels, pt.Month)
		incentives.Values = append(incentives.Values, pt.Value)
	}
	b.WriteString(incentives.View(s))
	b.WriteString("\n")

	if under := report.Underperforming(); len(under) > 0 {
		b.WriteString(s.Warning.Render("Off track this quarter:"))
		b.WriteString("\n")
		for _, name := range under {
			b.WriteString("  " + name + "\n")
		}
	}
	return b.String()
}
