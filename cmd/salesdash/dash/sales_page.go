package dash

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/erp"
	"salesdash/internal/report"
	"salesdash/internal/viewmodel"
)

// SaleRow is one sale prepared for display. Quantity is derived: it counts
// how many of the loaded sales share the row's product name.
type SaleRow struct {
	ID       string
	Product  string
	Amount   float64
	Quantity int
	Date     string
	month    string // lowercase full month name, for the filter
}

// CustomerRow is one employee with their sales total, for the compact
// customer table beside the sales list.
type CustomerRow struct {
	Name  string
	Email string
	Total float64
}

// salesLoadedMsg delivers a finished sales load.
type salesLoadedMsg struct {
	seq       int
	rows      []SaleRow
	customers []CustomerRow
	err       error
}

// salesFilterMsg fires when the month filter input has settled.
type salesFilterMsg struct {
	seq int
}

type salesPage struct {
	app *App

	table     *viewmodel.Table[SaleRow]
	customers *viewmodel.Table[CustomerRow]
	filter    textinput.Model

	loading   bool
	loadSeq   int
	filterSeq int
	filtering bool

	spin    spinner.Model
	errText string
}

func newSalesPage(app *App) *salesPage {
	p := &salesPage{app: app}
	p.table = viewmodel.NewTable[SaleRow](app.PageSize())
	p.customers = viewmodel.NewTable[CustomerRow](miniCustomersPageSize)

	p.filter = textinput.New()
	p.filter.Placeholder = "filter by month (e.g. march)"
	p.filter.CharLimit = 20
	p.filter.Width = 30

	p.spin = spinner.New()
	p.spin.Spinner = spinner.Dot
	p.spin.Style = app.Styles.Spinner
	return p
}

func (p *salesPage) Init() tea.Cmd {
	return p.reload()
}

func (p *salesPage) Focused() bool { return p.filtering }

func (p *salesPage) reload() tea.Cmd {
	p.loading = true
	p.errText = ""
	p.loadSeq++
	seq := p.loadSeq
	client := p.app.Client

	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()

		sales, err := client.ListSales(ctx)
		if err != nil {
			return salesLoadedMsg{seq: seq, err: err}
		}

		// The customer panel is best-effort: a failed employee fetch
		// leaves it empty without failing the page.
		var customers []CustomerRow
		if employees, err := client.ListEmployees(ctx); err == nil {
			totals, _ := viewmodel.Join(ctx, employees,
				func(ctx context.Context, e erp.Employee) (float64, error) {
					return client.TotalSalesFor(ctx, e.ID)
				}, viewmodel.DefaultJoinLimit)
			customers = make([]CustomerRow, len(employees))
			for i, e := range employees {
				customers[i] = CustomerRow{Name: e.User.Name, Email: e.User.Email, Total: totals[i]}
			}
			sort.Slice(customers, func(i, j int) bool { return customers[i].Total > customers[j].Total })
		}
		return salesLoadedMsg{seq: seq, rows: buildSaleRows(sales), customers: customers}
	}
	return tea.Batch(p.spin.Tick, load)
}

// buildSaleRows derives quantities across the whole loaded set, so two
// sales of "Laptop" both show quantity 2 regardless of which page they
// land on.
func buildSaleRows(sales []erp.Sale) []SaleRow {
	counts := viewmodel.CountByKey(sales, func(s erp.Sale) string { return s.ProductName })
	rows := make([]SaleRow, len(sales))
	for i, s := range sales {
		rows[i] = SaleRow{
			ID:       s.ID,
			Product:  s.ProductName,
			Amount:   s.Amount,
			Quantity: counts[i],
			Date:     s.DateOfSale.Format("02/01/2006"),
			month:    strings.ToLower(s.DateOfSale.Month().String()),
		}
	}
	return rows
}

func (p *salesPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case salesLoadedMsg:
		if msg.seq != p.loadSeq {
			return nil
		}
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return nil
		}
		p.table.SetRows(msg.rows)
		p.customers.SetRows(msg.customers)
		return nil

	case salesFilterMsg:
		if msg.seq != p.filterSeq {
			return nil
		}
		p.applyFilter()
		return nil

	case spinner.TickMsg:
		if !p.loading {
			return nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *salesPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.filtering {
		switch msg.String() {
		case "esc":
			p.filtering = false
			p.filter.Blur()
			return nil
		case "enter":
			p.filtering = false
			p.filter.Blur()
			p.applyFilter()
			return nil
		}
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		p.filterSeq++
		return tea.Batch(cmd, ui.Debounce(ui.SearchDebounce, salesFilterMsg{seq: p.filterSeq}))
	}

	switch msg.String() {
	case "/":
		p.filtering = true
		return p.filter.Focus()
	case "r":
		if p.loading {
			return nil
		}
		return p.reload()
	case "n", "right":
		p.table.Next()
	case "p", "left":
		p.table.Prev()
	}
	return nil
}

// applyFilter matches the typed text as a month-name prefix: "ma" matches
// March and May, "dec" only December.
func (p *salesPage) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(p.filter.Value()))
	if query == "" {
		p.table.SetFilter(nil)
		return
	}
	p.table.SetFilter(func(r SaleRow) bool {
		return strings.HasPrefix(r.month, query)
	})
}

func (p *salesPage) View(width int) string {
	s := p.app.Styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Sales Management"))
	b.WriteString("\n")
	if p.filtering || p.filter.Value() != "" {
		b.WriteString(p.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case p.loading:
		b.WriteString(p.spin.View() + " loading sales...")
		return b.String()
	case p.errText != "":
		b.WriteString(s.Error.Render("could not load sales: " + p.errText))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("press r to retry"))
		return b.String()
	}

	tbl := ui.NewDataTable("", "Product", "Amount", "Qty", "Date of Sale")
	tbl.AlignRight(1)
	tbl.AlignRight(2)
	for _, r := range p.table.Page() {
		tbl.AddRow(r.Product, fmt.Sprintf("%.2f", r.Amount), fmt.Sprintf("%d", r.Quantity), r.Date)
	}
	b.WriteString(tbl.View(s))
	b.WriteString("\n")
	b.WriteString(ui.RenderPager(s, p.table.PageIndex(), p.table.TotalPages()))
	b.WriteString("\n\n")

	cust := ui.NewDataTable("Top Customers", "Name", "Email", "Total Sales")
	cust.AlignRight(2)
	for _, c := range p.customers.Page() {
		cust.AddRow(c.Name, c.Email, fmt.Sprintf("%.2f", c.Total))
	}
	b.WriteString(cust.View(s))
	b.WriteString("\n")

	chart := ui.BarChart{Title: "Monthly Sales", MaxWidth: ui.ChartBarMaxWidth}
	for _, m := range report.MonthlySales() {
		chart.Labels = append(chart.Labels, m.Month)
		chart.Values = append(chart.Values, m.Amount)
	}
	b.WriteString(chart.View(s))
	return b.String()
}
