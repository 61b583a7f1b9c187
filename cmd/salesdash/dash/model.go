// Package dash is the interactive terminal dashboard. One root model owns
// the route, the session gate, and the per-route page models; pages own
// their row sets and loading state. Everything runs on the bubbletea event
// loop: network calls happen in commands and come back as typed messages.
//
// The package is split across files:
//   - model.go: root model, routing, global keys
//   - view.go: header/nav/footer chrome
//   - signin.go / signup.go: auth pages
//   - dashboard_page.go / team_page.go / sales_page.go /
//     contest_page.go / performance_page.go: routed pages
//   - employee_modal.go: add/edit/delete modal hosted by the team page
//   - welcome.go: markdown help overlay
package dash

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/config"
	"salesdash/internal/erp"
	"salesdash/internal/logging"
	"salesdash/internal/session"
)

// Route identifies one navigable page, mirroring the web dashboard's
// routes.
type Route int

const (
	RouteSignIn Route = iota
	RouteSignUp
	RouteDashboard   // "/" and "/managerdash"
	RoutePerformance // "/performance-tracking"
	RouteContest     // "/sales-contest"
	RouteSales       // "/sales-management"
	RouteTeam        // "/team-management"
)

var routeTitles = map[Route]string{
	RouteSignIn:      "Sign In",
	RouteSignUp:      "Sign Up",
	RouteDashboard:   "Dashboard",
	RoutePerformance: "Performance",
	RouteContest:     "Sales Contest",
	RouteSales:       "Sales",
	RouteTeam:        "Team",
}

// protectedRoutes are reachable only with a session, in nav order.
var protectedRoutes = []Route{
	RouteDashboard, RoutePerformance, RouteContest, RouteSales, RouteTeam,
}

// App bundles what every page needs. Constructed once in Run and injected,
// so no page reaches for ambient globals.
type App struct {
	Cfg     *config.Config
	Styles  ui.Styles
	Client  *erp.Client
	Session *session.Manager
}

// PageSize returns the configured rows-per-page.
func (a *App) PageSize() int {
	if a.Cfg == nil || a.Cfg.UI.PageSize < 1 {
		return 10
	}
	return a.Cfg.UI.PageSize
}

// logoutMsg reports a finished (best-effort) logout.
type logoutMsg struct{}

// Model is the root model of the dashboard.
type Model struct {
	app *App

	route  Route
	width  int
	height int

	signin      *signinModel
	signup      *signupModel
	dashboard   *dashboardPage
	team        *teamPage
	sales       *salesPage
	contest     *contestPage
	performance *performancePage

	showHelp bool
	help     string
}

// NewModel builds the root model. The starting route depends on whether a
// session was restored: signed-in users land on the dashboard, everyone
// else on the sign-in page.
func NewModel(app *App) Model {
	m := Model{app: app, route: RouteSignIn}
	m.signin = newSigninModel(app)
	if app.Session.LoggedIn() {
		m.route = RouteDashboard
	}
	return m
}

// Init mounts the starting page.
func (m Model) Init() tea.Cmd {
	if m.route == RouteDashboard {
		return m.mount(RouteDashboard)
	}
	return m.signin.Init()
}

// mount creates the page model for a route on first visit and returns its
// load command. Revisiting an already-mounted page does not re-fetch;
// pages expose "r" for that.
func (m *Model) mount(route Route) tea.Cmd {
	switch route {
	case RouteDashboard:
		if m.dashboard == nil {
			m.dashboard = newDashboardPage(m.app)
			return m.dashboard.Init()
		}
	case RouteTeam:
		if m.team == nil {
			m.team = newTeamPage(m.app)
			return m.team.Init()
		}
	case RouteSales:
		if m.sales == nil {
			m.sales = newSalesPage(m.app)
			return m.sales.Init()
		}
	case RouteContest:
		if m.contest == nil {
			m.contest = newContestPage(m.app)
			return m.contest.Init()
		}
	case RoutePerformance:
		if m.performance == nil {
			m.performance = newPerformancePage(m.app)
			return m.performance.Init()
		}
	case RouteSignUp:
		if m.signup == nil {
			m.signup = newSignupModel(m.app)
		}
	}
	return nil
}

// navigate switches routes, enforcing the session gate: protected routes
// require a login, auth routes bounce a signed-in user to the dashboard.
func (m *Model) navigate(route Route) tea.Cmd {
	if !m.app.Session.LoggedIn() && route != RouteSignIn && route != RouteSignUp {
		logging.View("redirecting to sign-in (not authenticated)")
		route = RouteSignIn
	}
	m.route = route
	return m.mount(route)
}

// logout clears the session (best-effort remote call) and drops every
// page model: each owned row set dies with its view.
func (m *Model) logout() tea.Cmd {
	mgr := m.app.Session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		mgr.Logout(ctx)
		return logoutMsg{}
	}
}

// Update is the single event loop shared by every page.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Fall through to the active page so inputs can resize too.

	case logoutMsg:
		m.dashboard = nil
		m.team = nil
		m.sales = nil
		m.contest = nil
		m.performance = nil
		m.signin = newSigninModel(m.app)
		m.route = RouteSignIn
		return m, m.signin.Init()

	case sessionChangedMsg:
		// Raised by signin/signup after a successful auth.
		return m, m.navigate(RouteDashboard)

	case gotoSignupMsg:
		return m, m.navigate(RouteSignUp)

	case gotoSigninMsg:
		m.route = RouteSignIn
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	return m, m.routeMsg(msg)
}

// handleGlobalKey deals with keys that work everywhere. Keys that would
// collide with typing are suppressed while a text input has focus.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	case "ctrl+l":
		if m.app.Session.LoggedIn() {
			return m.logout(), true
		}
		return nil, true
	}

	if m.activeFocused() {
		return nil, false
	}

	switch msg.String() {
	case "q":
		return tea.Quit, true
	case "?":
		m.showHelp = !m.showHelp
		if m.showHelp && m.help == "" {
			m.help = renderHelp(m.width)
		}
		return nil, true
	case "1", "2", "3", "4", "5":
		if m.app.Session.LoggedIn() {
			idx := int(msg.String()[0] - '1')
			return m.navigate(protectedRoutes[idx]), true
		}
	}
	return nil, false
}

// activeFocused reports whether the active page is capturing keystrokes
// (a focused text input), in which case navigation keys pass through.
func (m *Model) activeFocused() bool {
	switch m.route {
	case RouteSignIn, RouteSignUp:
		return true
	case RouteTeam:
		return m.team != nil && m.team.Focused()
	case RouteSales:
		return m.sales != nil && m.sales.Focused()
	}
	return false
}

// routeMsg forwards a message to every mounted page. Pages discriminate on
// their own message types and sequence numbers, so stale completions from
// an abandoned load fall on the floor.
func (m *Model) routeMsg(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	forward := func(upd func(tea.Msg) tea.Cmd) {
		if cmd := upd(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	switch m.route {
	case RouteSignIn:
		if m.signin != nil {
			forward(m.signin.Update)
		}
	case RouteSignUp:
		if m.signup != nil {
			forward(m.signup.Update)
		}
	default:
		// Non-key messages (fetch completions, spinner ticks) go to all
		// mounted pages; keys only to the visible one.
		_, isKey := msg.(tea.KeyMsg)
		if m.dashboard != nil && (!isKey || m.route == RouteDashboard) {
			forward(m.dashboard.Update)
		}
		if m.team != nil && (!isKey || m.route == RouteTeam) {
			forward(m.team.Update)
		}
		if m.sales != nil && (!isKey || m.route == RouteSales) {
			forward(m.sales.Update)
		}
		if m.contest != nil && (!isKey || m.route == RouteContest) {
			forward(m.contest.Update)
		}
		if m.performance != nil && (!isKey || m.route == RoutePerformance) {
			forward(m.performance.Update)
		}
	}

	return tea.Batch(cmds...)
}
