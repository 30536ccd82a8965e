package layout

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// KeyHint represents a command key shown under a question.
type KeyHint struct {
	Key         string
	Description string
}

// RenderHints renders one indented "key : description" line per hint.
func RenderHints(hints []KeyHint) []string {
	width := 0
	for _, h := range hints {
		width = max(width, lipgloss.Width(h.Key))
	}
	lines := make([]string, 0, len(hints))
	for _, h := range hints {
		pad := strings.Repeat(" ", width-lipgloss.Width(h.Key))
		lines = append(lines, "  "+h.Key+pad+" : "+h.Description)
	}
	return lines
}

// RenderBanner renders the boxed application banner.
func RenderBanner(styles theme.Styles, title, detail string) string {
	content := styles.Heading.Render(title)
	if detail != "" {
		content += "  " + styles.Hint.Render(detail)
	}
	return styles.Banner.Render(content)
}
