package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SearchDebounce is how long a search input sits idle before the filter
// applies.
const SearchDebounce = 300 * time.Millisecond

// Debounce delivers msg after d. Callers stamp msg with a sequence number
// and ignore deliveries whose stamp is stale, so only the last keystroke
// in a burst takes effect.
func Debounce(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
