package ui

import (
	"strings"
	"testing"
)

func TestBarChartScalesToLargest(t *testing.T) {
	c := BarChart{
		Labels:   []string{"Jan", "Feb"},
		Values:   []float64{100, 50},
		MaxWidth: 10,
	}
	out := c.View(DefaultStyles())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 bars, got %d:\n%s", len(lines), out)
	}
	if jan, feb := strings.Count(lines[0], "█"), strings.Count(lines[1], "█"); jan != 10 || feb != 5 {
		t.Errorf("bars not scaled: jan=%d feb=%d", jan, feb)
	}
}

func TestBarChartTinyValueStillVisible(t *testing.T) {
	c := BarChart{
		Labels:   []string{"big", "tiny"},
		Values:   []float64{1000000, 1},
		MaxWidth: 10,
	}
	out := c.View(DefaultStyles())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if strings.Count(lines[1], "█") < 1 {
		t.Errorf("non-zero value should draw at least one cell:\n%s", out)
	}
}

func TestBarChartEmpty(t *testing.T) {
	out := BarChart{Title: "Nothing"}.View(DefaultStyles())
	if !strings.Contains(out, "(no data)") {
		t.Fatalf("empty chart should say so:\n%s", out)
	}
}

func TestFormatChartValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1k"},
		{72000, "72k"},
		{1234.5, "1k"},
		{89500, "90k"},
	}
	for _, tc := range cases {
		if got := formatChartValue(tc.in); got != tc.want {
			t.Errorf("formatChartValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
