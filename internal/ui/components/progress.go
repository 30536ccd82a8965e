package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// ProgressBar displays a horizontal text progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar with the given styles.
func (p ProgressBar) View(styles theme.Styles) string {
	var result string

	if p.Label != "" {
		result += p.Label + "  "
	}

	barWidth := p.Width
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += styles.BarFilled.Render(strings.Repeat("█", filled))
	result += styles.BarEmpty.Render(strings.Repeat("░", empty))

	if p.ShowPercent {
		result += fmt.Sprintf("  %d%%", int(p.Percent*100))
	}

	return result
}
