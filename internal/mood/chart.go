package mood

import (
	"strings"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/models"
)

const columnWidth = 5

// Chart renders points as a plain-text dot plot, one row per mood level from
// highest to lowest, followed by the day labels. Days without an entry are
// drawn as a dotted column so gaps stay visible.
func Chart(points []models.TrendPoint) string {
	var b strings.Builder
	for level := constants.MaxMoodLevel; level >= constants.MinMoodLevel; level-- {
		l, _ := Level(level)
		b.WriteString(l.Emoji)
		b.WriteString(" │")
		for _, p := range points {
			cell := ""
			switch {
			case p.Level == nil:
				cell = "·"
			case *p.Level == level:
				cell = "●"
			}
			b.WriteString(center(cell, columnWidth))
		}
		b.WriteString("\n")
	}

	b.WriteString("   └")
	b.WriteString(strings.Repeat("─", columnWidth*len(points)))
	b.WriteString("\n    ")
	for _, p := range points {
		b.WriteString(center(p.Label, columnWidth))
	}
	return b.String()
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
