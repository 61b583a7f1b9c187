package dash

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"salesdash/cmd/salesdash/ui"
)

// clientTimeout bounds every command-issued API call. The HTTP client has
// its own deadline; this one covers the whole fan-out on the team page.
const clientTimeout = 60 * time.Second

// View composes chrome around the active page: branded header, nav bar,
// page body, key-hint footer.
func (m Model) View() string {
	if m.width == 0 {
		return "starting..."
	}
	if m.width < ui.MinimumTerminalWidth {
		return m.app.Styles.Warning.Render(
			fmt.Sprintf("Terminal too narrow (%d cols, need %d).", m.width, ui.MinimumTerminalWidth))
	}
	if m.showHelp {
		return m.help
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.app.Session.LoggedIn() {
		b.WriteString(m.renderNav())
		b.WriteString("\n")
	}
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	s := m.app.Styles
	title := s.Title.Render("SalesDash")
	right := ""
	if sess := m.app.Session.Current(); sess != nil {
		right = s.Muted.Render(fmt.Sprintf("%s <%s>", sess.User.Name, sess.User.Email))
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return s.Header.Width(m.width).Render(title + strings.Repeat(" ", gap) + right)
}

func (m Model) renderNav() string {
	s := m.app.Styles
	var items []string
	for i, r := range protectedRoutes {
		label := fmt.Sprintf("%d %s", i+1, routeTitles[r])
		if r == m.route {
			items = append(items, s.NavActive.Render(label))
		} else {
			items = append(items, s.NavInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) renderBody() string {
	switch m.route {
	case RouteSignIn:
		return m.signin.View(m.width)
	case RouteSignUp:
		if m.signup == nil {
			return ""
		}
		return m.signup.View(m.width)
	case RouteDashboard:
		if m.dashboard == nil {
			return ""
		}
		return m.dashboard.View(m.width, m.bodyHeight())
	case RouteTeam:
		if m.team == nil {
			return ""
		}
		return m.team.View(m.width)
	case RouteSales:
		if m.sales == nil {
			return ""
		}
		return m.sales.View(m.width)
	case RouteContest:
		if m.contest == nil {
			return ""
		}
		return m.contest.View(m.width)
	case RoutePerformance:
		if m.performance == nil {
			return ""
		}
		return m.performance.View(m.width)
	}
	return ""
}

func (m Model) bodyHeight() int {
	h := m.height - ui.HeaderHeight - ui.NavHeight - ui.FooterHeight
	if h < 4 {
		h = 4
	}
	return h
}

func (m Model) renderFooter() string {
	s := m.app.Styles
	hints := "ctrl+c quit"
	switch m.route {
	case RouteSignIn:
		hints = "tab next field | enter submit | ctrl+s sign up | ctrl+c quit"
	case RouteSignUp:
		hints = "tab next field | enter submit | esc back to sign in | ctrl+c quit"
	case RouteTeam:
		if m.team != nil && m.team.Focused() {
			hints = "esc leave search | enter apply"
		} else {
			hints = "1-5 pages | / search | a add | e edit | d delete | n/p page | y copy | r reload | ? help | q quit"
		}
	case RouteSales:
		if m.sales != nil && m.sales.Focused() {
			hints = "esc leave filter | enter apply"
		} else {
			hints = "1-5 pages | / month filter | n/p page | r reload | ? help | q quit"
		}
	default:
		hints = "1-5 pages | r reload | ctrl+l log out | ? help | q quit"
	}
	return s.Footer.Width(m.width).Render(hints)
}
