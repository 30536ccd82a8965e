package components

import (
	"fmt"
	"strings"
)

// MenuItem represents a single keyed entry in a line menu.
type MenuItem struct {
	Key      string
	Label    string
	Disabled bool
}

// Menu is a vertical list of keyed choices. Disabled items are neither
// shown nor selectable.
type Menu struct {
	Title string
	Items []MenuItem
}

// NewMenu creates a new menu with the given items.
func NewMenu(title string, items []MenuItem) Menu {
	return Menu{Title: title, Items: items}
}

// Lookup returns the index of the enabled item whose key matches input
// exactly (keys are case-sensitive).
func (m Menu) Lookup(input string) (int, bool) {
	for i, item := range m.Items {
		if item.Disabled {
			continue
		}
		if item.Key == input {
			return i, true
		}
	}
	return -1, false
}

// View renders the enabled items, one per line.
func (m Menu) View() string {
	var b strings.Builder
	for _, item := range m.Items {
		if item.Disabled {
			continue
		}
		fmt.Fprintf(&b, "%s. %s\n", item.Key, item.Label)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
