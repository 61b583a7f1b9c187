package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chartPalette cycles through the series colors.
var chartPalette = []lipgloss.Color{Chart1, Chart2, Chart3, Chart4, Chart5}

// BarChart renders a horizontal bar chart: one labelled bar per value,
// scaled to the largest value. It stands in for the line/bar charts of
// the web dashboard.
type BarChart struct {
	Title    string
	Labels   []string
	Values   []float64
	MaxWidth int  // bar width in cells; 0 uses ChartBarMaxWidth
	Cycle    bool // color each bar from the palette instead of one color
}

// View renders the chart using the provided styles.
func (c BarChart) View(styles Styles) string {
	var sb strings.Builder

	if c.Title != "" {
		sb.WriteString(styles.Title.Render(c.Title))
		sb.WriteString("\n")
	}
	if len(c.Values) == 0 {
		sb.WriteString(styles.Muted.Render("  (no data)"))
		sb.WriteString("\n")
		return sb.String()
	}

	maxWidth := c.MaxWidth
	if maxWidth <= 0 {
		maxWidth = ChartBarMaxWidth
	}

	maxVal := 0.0
	for _, v := range c.Values {
		if v > maxVal {
			maxVal = v
		}
	}

	labelWidth := ChartLabelWidth
	for _, l := range c.Labels {
		if lipgloss.Width(l) > labelWidth {
			labelWidth = lipgloss.Width(l)
		}
	}
	labelStyle := styles.Muted.Width(labelWidth)

	for i, v := range c.Values {
		label := ""
		if i < len(c.Labels) {
			label = c.Labels[i]
		}

		width := 0
		if maxVal > 0 {
			width = int(v / maxVal * float64(maxWidth))
		}
		if width < 1 && v > 0 {
			width = 1
		}

		color := Chart1
		if c.Cycle {
			color = chartPalette[i%len(chartPalette)]
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", width))

		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(" ")
		sb.WriteString(bar)
		sb.WriteString(" ")
		sb.WriteString(styles.Muted.Render(formatChartValue(v)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// PairedBarChart renders two series side by side per label, used for the
// target-vs-achieved view.
type PairedBarChart struct {
	Title       string
	Labels      []string
	First       []float64 // e.g. target
	Second      []float64 // e.g. achieved
	FirstLabel  string
	SecondLabel string
	MaxWidth    int
}

// View renders both series with a small legend.
func (c PairedBarChart) View(styles Styles) string {
	var sb strings.Builder

	if c.Title != "" {
		sb.WriteString(styles.Title.Render(c.Title))
		sb.WriteString("\n")
	}

	maxWidth := c.MaxWidth
	if maxWidth <= 0 {
		maxWidth = ChartBarMaxWidth
	}

	maxVal := 0.0
	for _, v := range c.First {
		if v > maxVal {
			maxVal = v
		}
	}
	for _, v := range c.Second {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		sb.WriteString(styles.Muted.Render("  (no data)"))
		sb.WriteString("\n")
		return sb.String()
	}

	firstStyle := lipgloss.NewStyle().Foreground(Chart5)
	secondStyle := lipgloss.NewStyle().Foreground(Chart1)
	labelStyle := styles.Muted.Width(ChartLabelWidth)

	for i, label := range c.Labels {
		var first, second float64
		if i < len(c.First) {
			first = c.First[i]
		}
		if i < len(c.Second) {
			second = c.Second[i]
		}

		fw := int(first / maxVal * float64(maxWidth))
		sw := int(second / maxVal * float64(maxWidth))

		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(" ")
		sb.WriteString(firstStyle.Render(strings.Repeat("▐", maxInt(fw, 1))))
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(""))
		sb.WriteString(" ")
		sb.WriteString(secondStyle.Render(strings.Repeat("▐", maxInt(sw, 1))))
		sb.WriteString("\n")
	}

	legend := fmt.Sprintf("%s %s  %s %s",
		firstStyle.Render("▐▐"), c.FirstLabel,
		secondStyle.Render("▐▐"), c.SecondLabel)
	sb.WriteString(styles.Muted.Render(legend))
	sb.WriteString("\n")

	return sb.String()
}

func formatChartValue(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("%.0fk", v/1000)
	}
	return fmt.Sprintf("%.0f", v)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
