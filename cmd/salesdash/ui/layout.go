// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for page and widget sizing.
const (
	HeaderHeight = 1
	NavHeight    = 1
	FooterHeight = 1

	ContentPaddingH = 2
	ContentPaddingV = 1

	// Table dimensions
	TableCellPadding = 2
	TableRowHeight   = 1

	// Chart dimensions
	ChartBarMaxWidth = 40
	ChartLabelWidth  = 4
	GaugeWidth       = 30

	// Responsive breakpoints
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24
	CompactModeWidth      = 100
)

// LayoutConfig provides computed dimensions for the current terminal size.
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given size.
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ContentWidth returns the usable width inside the content padding.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - 2*ContentPaddingH
	if w < 1 {
		w = 1
	}
	return w
}

// ContentHeight returns the rows available between header/nav and footer.
func (l LayoutConfig) ContentHeight() int {
	h := l.TerminalHeight - HeaderHeight - NavHeight - FooterHeight - 2*ContentPaddingV
	if h < 1 {
		h = 1
	}
	return h
}
