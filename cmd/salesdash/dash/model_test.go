package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnauthenticatedStartsOnSignIn(t *testing.T) {
	m := NewModel(testApp(t))
	assert.Equal(t, RouteSignIn, m.route)
}

func TestProtectedRouteRedirectsToSignIn(t *testing.T) {
	m := NewModel(testApp(t))
	m.navigate(RouteTeam)
	assert.Equal(t, RouteSignIn, m.route)
	assert.Nil(t, m.team, "protected page must not mount while logged out")
}

func TestTeamPageDropsStaleLoad(t *testing.T) {
	p := newTeamPage(testApp(t))
	p.loadSeq = 3
	p.loading = true

	p.Update(teamLoadedMsg{seq: 2, rows: []TeamRow{{ID: "stale"}}})
	assert.True(t, p.loading, "stale completion must not finish the newer load")
	assert.Zero(t, p.table.Len())

	p.Update(teamLoadedMsg{seq: 3, rows: []TeamRow{{ID: "fresh", Department: "Sales"}}})
	assert.False(t, p.loading)
	assert.Equal(t, 1, p.table.Len())
	assert.Equal(t, []string{"All", "Sales"}, p.departments)
}

func TestTeamPageAppliesModalResults(t *testing.T) {
	p := newTeamPage(testApp(t))
	p.loading = false
	p.table.SetRows([]TeamRow{
		{ID: "e1", Name: "Ana"},
		{ID: "e2", Name: "Bea"},
	})

	p.applyModalResult(modalResult{kind: modalUpdated, row: TeamRow{ID: "e2", Name: "Bee"}})
	rows := p.table.Page()
	require.Len(t, rows, 2)
	assert.Equal(t, "Bee", rows[1].Name)

	p.applyModalResult(modalResult{kind: modalDeleted, row: TeamRow{ID: "e1", Name: "Ana"}})
	assert.Equal(t, 1, p.table.Len())

	p.applyModalResult(modalResult{kind: modalCreated, row: TeamRow{ID: "e3", Name: "Cyn"}})
	assert.Equal(t, 2, p.table.Len())
}

func TestTeamFilterComposesSearchAndDepartment(t *testing.T) {
	p := newTeamPage(testApp(t))
	p.table.SetRows([]TeamRow{
		{ID: "e1", Name: "Ana Ivanova", Department: "Sales"},
		{ID: "e2", Name: "Ana Petrova", Department: "Marketing"},
		{ID: "e3", Name: "Bea Ruiz", Department: "Sales"},
	})
	p.departments = []string{"All", "Marketing", "Sales"}

	p.search.SetValue("ana")
	p.deptIdx = 2 // Sales
	p.applyFilter()

	rows := p.table.Page()
	require.Len(t, rows, 1)
	assert.Equal(t, "e1", rows[0].ID)

	p.search.SetValue("")
	p.deptIdx = 0
	p.applyFilter()
	assert.Equal(t, 3, p.table.Len())
}

func TestSalesPageMonthFilter(t *testing.T) {
	p := newSalesPage(testApp(t))
	p.table.SetRows([]SaleRow{
		{ID: "s1", Product: "Laptop", month: "march"},
		{ID: "s2", Product: "Phone", month: "may"},
		{ID: "s3", Product: "Desk", month: "december"},
	})

	p.filter.SetValue("ma")
	p.applyFilter()
	assert.Equal(t, 2, p.table.Len(), "prefix matches march and may")

	p.filter.SetValue("dec")
	p.applyFilter()
	assert.Equal(t, 1, p.table.Len())

	p.filter.SetValue("")
	p.applyFilter()
	assert.Equal(t, 3, p.table.Len())
}
