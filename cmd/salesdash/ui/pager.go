package ui

import (
	"fmt"
	"strings"
)

// RenderPager draws the "Prev [1] [2] [3] Next" control under a paged
// table. The current page gets the active badge; Prev/Next dim out at the
// ends, matching the web controls.
func RenderPager(styles Styles, current, total int) string {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	var parts []string

	if current == 1 {
		parts = append(parts, styles.Muted.Render("Prev"))
	} else {
		parts = append(parts, styles.Body.Render("Prev"))
	}

	for i := 1; i <= total; i++ {
		label := fmt.Sprintf("[%d]", i)
		if i == current {
			parts = append(parts, styles.Badge.Render(fmt.Sprintf("%d", i)))
		} else {
			parts = append(parts, styles.Muted.Render(label))
		}
	}

	if current == total {
		parts = append(parts, styles.Muted.Render("Next"))
	} else {
		parts = append(parts, styles.Body.Render("Next"))
	}

	return strings.Join(parts, " ")
}
