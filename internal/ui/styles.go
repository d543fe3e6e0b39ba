package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"launchbox/internal/models"
)

// Theme holds the lipgloss styles derived from the persisted style map.
// Color attributes drive the terminal theme; font attributes have no
// terminal equivalent and are carried as pass-through state.
type Theme struct {
	Query        lipgloss.Style // query input text
	Title        lipgloss.Style // result names
	Comment      lipgloss.Style // result descriptions
	Match        lipgloss.Style // matched substring in names
	CommentMatch lipgloss.Style // matched substring in descriptions
	Selected     lipgloss.Style // selected row background
	Border       lipgloss.Style // panel borders
	Help         lipgloss.Style // footer hints
}

// NewTheme builds a Theme from style attribute values, falling back to the
// defaults for anything missing or not hex-shaped.
func NewTheme(style map[string]string) Theme {
	title := colorOr(style, "title")
	comment := colorOr(style, "comment")
	highlight := colorOr(style, "highlight")
	match := colorOr(style, "match")

	return Theme{
		Query:        lipgloss.NewStyle().Bold(true).Foreground(title),
		Title:        lipgloss.NewStyle().Foreground(title),
		Comment:      lipgloss.NewStyle().Foreground(comment),
		Match:        lipgloss.NewStyle().Bold(true).Foreground(match),
		CommentMatch: lipgloss.NewStyle().Bold(true).Foreground(comment),
		Selected:     lipgloss.NewStyle().Background(highlight),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight),
		Help: lipgloss.NewStyle().Foreground(comment),
	}
}

// colorOr returns the configured color for attr, or its default when the
// value does not look like #rrggbb.
func colorOr(style map[string]string, attr string) lipgloss.Color {
	val := style[attr]
	if !isHexColor(val) {
		val = models.DefaultStyle()[attr]
	}
	return lipgloss.Color(val)
}

func isHexColor(s string) bool {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
