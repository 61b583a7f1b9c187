package dash

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/erp"
	"salesdash/internal/logging"
	"salesdash/internal/viewmodel"
)

// TeamRow is one employee with the two per-employee lookups already
// joined in.
type TeamRow struct {
	ID          string
	Name        string
	Email       string
	Designation string
	Department  string
	Incentives  []string
	TotalSales  float64
}

// teamLoadedMsg delivers a finished team load. Defaulted counts rows
// whose incentive or total lookup failed and fell back to zero values.
type teamLoadedMsg struct {
	seq       int
	rows      []TeamRow
	defaulted int
	err       error
}

// teamSearchMsg fires when the search input has been idle long enough.
type teamSearchMsg struct {
	seq int
}

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct{ err error }

const allDepartments = "All"

type teamPage struct {
	app *App

	table  *viewmodel.Table[TeamRow]
	search textinput.Model

	loading   bool
	loadSeq   int
	searchSeq int
	searching bool
	cursor    int

	departments []string
	deptIdx     int

	spin    spinner.Model
	status  string
	errText string

	modal *employeeModal
}

func newTeamPage(app *App) *teamPage {
	p := &teamPage{app: app}
	p.table = viewmodel.NewTable[TeamRow](app.PageSize())

	p.search = textinput.New()
	p.search.Placeholder = "search name, email, designation..."
	p.search.CharLimit = 80
	p.search.Width = 40

	p.spin = spinner.New()
	p.spin.Spinner = spinner.Dot
	p.spin.Style = app.Styles.Spinner

	p.departments = []string{allDepartments}
	return p
}

func (p *teamPage) Init() tea.Cmd {
	return p.reload()
}

func (p *teamPage) Focused() bool {
	if p.modal != nil {
		return p.modal.Focused()
	}
	return p.searching
}

// reload fetches the employee list and fans out the per-employee incentive
// and total-sales lookups. A bumped sequence number abandons any load
// already in flight.
func (p *teamPage) reload() tea.Cmd {
	p.loading = true
	p.errText = ""
	p.loadSeq++
	seq := p.loadSeq
	client := p.app.Client

	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()

		t := logging.StartTimer(logging.CategoryView, "team load")
		defer t.Stop()

		employees, err := client.ListEmployees(ctx)
		if err != nil {
			return teamLoadedMsg{seq: seq, err: err}
		}

		incentives, defIncent := viewmodel.Join(ctx, employees,
			func(ctx context.Context, e erp.Employee) ([]string, error) {
				return client.IncentiveSlab(ctx, e.ID)
			}, viewmodel.DefaultJoinLimit)

		totals, defTotals := viewmodel.Join(ctx, employees,
			func(ctx context.Context, e erp.Employee) (float64, error) {
				return client.TotalSalesFor(ctx, e.ID)
			}, viewmodel.DefaultJoinLimit)

		rows := make([]TeamRow, len(employees))
		for i, e := range employees {
			rows[i] = TeamRow{
				ID:          e.ID,
				Name:        e.User.Name,
				Email:       e.User.Email,
				Designation: e.Designation,
				Department:  e.Department,
				Incentives:  incentives[i],
				TotalSales:  totals[i],
			}
		}
		return teamLoadedMsg{seq: seq, rows: rows, defaulted: defIncent + defTotals}
	}
	return tea.Batch(p.spin.Tick, load)
}

func (p *teamPage) Update(msg tea.Msg) tea.Cmd {
	// The modal, while open, owns everything except load completions.
	// Spinner ticks go to both; each spinner ignores the other's ID.
	if p.modal != nil {
		if tick, ok := msg.(spinner.TickMsg); ok {
			_, modalCmd := p.modal.Update(tick)
			var own tea.Cmd
			if p.loading {
				p.spin, own = p.spin.Update(tick)
			}
			return tea.Batch(modalCmd, own)
		}
		switch msg.(type) {
		case teamLoadedMsg, teamSearchMsg:
		default:
			done, cmd := p.modal.Update(msg)
			if done != nil {
				p.applyModalResult(*done)
				p.modal = nil
			}
			return cmd
		}
	}

	switch msg := msg.(type) {
	case teamLoadedMsg:
		if msg.seq != p.loadSeq {
			logging.ViewDebug("dropping stale team load (seq %d, want %d)", msg.seq, p.loadSeq)
			return nil
		}
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return nil
		}
		p.table.SetRows(msg.rows)
		p.departments = collectDepartments(msg.rows)
		p.deptIdx = 0
		p.cursor = 0
		p.status = fmt.Sprintf("%d employees", len(msg.rows))
		if msg.defaulted > 0 {
			p.status += fmt.Sprintf(" (%d lookups defaulted)", msg.defaulted)
		}
		return nil

	case teamSearchMsg:
		if msg.seq != p.searchSeq {
			return nil
		}
		p.applyFilter()
		return nil

	case copiedMsg:
		if msg.err != nil {
			p.status = "copy failed: " + msg.err.Error()
		} else {
			p.status = "row copied"
		}
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

func (p *teamPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.searching {
		switch msg.String() {
		case "esc":
			p.searching = false
			p.search.Blur()
			return nil
		case "enter":
			p.searching = false
			p.search.Blur()
			p.applyFilter()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.searchSeq++
		return tea.Batch(cmd, ui.Debounce(ui.SearchDebounce, teamSearchMsg{seq: p.searchSeq}))
	}

	switch msg.String() {
	case "/":
		p.searching = true
		return p.search.Focus()
	case "f":
		p.deptIdx = (p.deptIdx + 1) % len(p.departments)
		p.applyFilter()
		return nil
	case "r":
		if p.loading {
			return nil
		}
		return p.reload()
	case "n", "right":
		p.table.Next()
		p.cursor = 0
		return nil
	case "p", "left":
		p.table.Prev()
		p.cursor = 0
		return nil
	case "down", "j":
		if p.cursor < len(p.table.Page())-1 {
			p.cursor++
		}
		return nil
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
		return nil
	case "y":
		return p.copyRow()
	case "a":
		p.modal = newAddModal(p.app)
		return p.modal.Init()
	case "e":
		if row, ok := p.selected(); ok {
			p.modal = newEditModal(p.app, row)
			return p.modal.Init()
		}
		return nil
	case "d":
		if row, ok := p.selected(); ok {
			p.modal = newDeleteModal(p.app, row)
			return p.modal.Init()
		}
		return nil
	}
	return nil
}

func (p *teamPage) selected() (TeamRow, bool) {
	page := p.table.Page()
	if p.cursor < 0 || p.cursor >= len(page) {
		return TeamRow{}, false
	}
	return page[p.cursor], true
}

func (p *teamPage) copyRow() tea.Cmd {
	row, ok := p.selected()
	if !ok {
		return nil
	}
	text := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%.2f",
		row.Name, row.Email, row.Designation, row.Department,
		strings.Join(row.Incentives, ", "), row.TotalSales)
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// applyFilter composes the free-text search and the department cycle into
// one table filter. Setting a filter snaps back to page one.
func (p *teamPage) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(p.search.Value()))
	dept := p.departments[p.deptIdx]

	if query == "" && dept == allDepartments {
		p.table.SetFilter(nil)
		p.cursor = 0
		return
	}
	p.table.SetFilter(func(r TeamRow) bool {
		if dept != allDepartments && r.Department != dept {
			return false
		}
		if query == "" {
			return true
		}
		for _, field := range []string{r.Name, r.Email, r.Designation, r.Department} {
			if strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}
		return false
	})
	p.cursor = 0
}

// applyModalResult patches the in-memory rows so the table reflects a
// create, update or delete without a full reload.
func (p *teamPage) applyModalResult(res modalResult) {
	switch res.kind {
	case modalCreated:
		p.table.Append(res.row)
		p.status = "added " + res.row.Name
	case modalUpdated:
		p.table.Replace(func(r TeamRow) bool { return r.ID == res.row.ID }, res.row)
		p.status = "updated " + res.row.Name
	case modalDeleted:
		p.table.Remove(func(r TeamRow) bool { return r.ID == res.row.ID })
		p.status = "removed " + res.row.Name
		if p.cursor >= len(p.table.Page()) && p.cursor > 0 {
			p.cursor--
		}
	case modalCancelled:
	}
}

func collectDepartments(rows []TeamRow) []string {
	seen := map[string]bool{}
	for _, r := range rows {
		if r.Department != "" {
			seen[r.Department] = true
		}
	}
	out := make([]string, 0, len(seen)+1)
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return append([]string{allDepartments}, out...)
}

func (p *teamPage) View(width int) string {
	s := p.app.Styles

	if p.modal != nil {
		return p.modal.View(width)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Team Management"))
	b.WriteString("\n")

	if p.searching || p.search.Value() != "" {
		b.WriteString(p.search.View())
		b.WriteString("\n")
	}
	b.WriteString(s.Muted.Render("department: "))
	b.WriteString(s.Badge.Render(p.departments[p.deptIdx]))
	b.WriteString("\n\n")

	switch {
	case p.loading:
		b.WriteString(p.spin.View() + " loading team...")
		return b.String()
	case p.errText != "":
		b.WriteString(s.Error.Render("could not load team: " + p.errText))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("press r to retry"))
		return b.String()
	}

	tbl := ui.NewDataTable("", "Name", "Email", "Designation", "Department", "Incentives", "Total Sales")
	tbl.AlignRight(5)
	for i, r := range p.table.Page() {
		name := r.Name
		if i == p.cursor {
			name = "> " + name
		}
		tbl.AddRow(name, r.Email, r.Designation, r.Department,
			strings.Join(r.Incentives, ", "),
			fmt.Sprintf("%.2f", r.TotalSales))
	}
	b.WriteString(tbl.View(s))
	b.WriteString("\n")
	b.WriteString(ui.RenderPager(s, p.table.PageIndex(), p.table.TotalPages()))
	if p.status != "" {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(p.status))
	}
	return b.String()
}
