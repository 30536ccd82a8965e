package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#EAB308") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Styles groups the styles used by the line console. The zero-color variant
// renders every string unchanged.
type Styles struct {
	Heading     lipgloss.Style
	Question    lipgloss.Style
	Correct     lipgloss.Style
	Incorrect   lipgloss.Style
	Explanation lipgloss.Style
	Hint        lipgloss.Style
	BarFilled   lipgloss.Style
	BarEmpty    lipgloss.Style
	Banner      lipgloss.Style
}

// New returns the colored styles, or plain ones when color is false.
func New(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Heading:     plain,
			Question:    plain,
			Correct:     plain,
			Incorrect:   plain,
			Explanation: plain,
			Hint:        plain,
			BarFilled:   plain,
			BarEmpty:    plain,
			Banner: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
		}
	}
	return Styles{
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary),

		Question: lipgloss.NewStyle().
			Bold(true),

		Correct: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Incorrect: lipgloss.NewStyle().
			Foreground(Error).
			Bold(true),

		Explanation: lipgloss.NewStyle().
			Foreground(Accent),

		Hint: lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true),

		BarFilled: lipgloss.NewStyle().
			Foreground(Secondary),

		BarEmpty: lipgloss.NewStyle().
			Foreground(Border),

		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
	}
}
