package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"launchbox/internal/models"
	"launchbox/internal/search"
	"launchbox/internal/ui"
)

// ResultList renders the ranked search results and tracks the selection.
type ResultList struct {
	Catalog  models.Catalog
	Results  []models.Result
	Selected int
	Width    int

	theme ui.Theme
}

// NewResultList creates a result list over the catalog.
func NewResultList(catalog models.Catalog, theme ui.Theme) *ResultList {
	return &ResultList{
		Catalog: catalog,
		Width:   60,
		theme:   theme,
	}
}

// SetQuery re-runs the search and resets the selection when it falls off
// the new result list.
func (l *ResultList) SetQuery(query string) {
	l.Results = search.Search(query, l.Catalog)
	if l.Selected >= len(l.Results) {
		l.Selected = 0
	}
}

// MoveUp moves the selection up, wrapping to the bottom.
func (l *ResultList) MoveUp() {
	if len(l.Results) == 0 {
		return
	}
	if l.Selected > 0 {
		l.Selected--
	} else {
		l.Selected = len(l.Results) - 1
	}
}

// MoveDown moves the selection down, wrapping to the top.
func (l *ResultList) MoveDown() {
	if len(l.Results) == 0 {
		return
	}
	if l.Selected < len(l.Results)-1 {
		l.Selected++
	} else {
		l.Selected = 0
	}
}

// Current returns the selected application, or nil with no results.
func (l *ResultList) Current() *models.Application {
	if len(l.Results) == 0 || l.Selected >= len(l.Results) {
		return nil
	}
	return l.Catalog[l.Results[l.Selected].Index]
}

// View renders the result rows, emphasizing the query match inside each
// name and comment.
func (l *ResultList) View(query string) string {
	if len(l.Results) == 0 {
		return ""
	}

	var b strings.Builder
	for i, res := range l.Results {
		app := l.Catalog[res.Index]

		cursor := "  "
		if i == l.Selected {
			cursor = l.theme.Match.Render("> ")
		}

		name := ui.HighlightMatch(app.Name, query, l.theme.Title, l.theme.Match)
		row := cursor + name
		if app.Comment != "" {
			comment := ui.HighlightMatch(app.Comment, query, l.theme.Comment, l.theme.CommentMatch)
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", comment)
		}

		b.WriteString(row)
		if i < len(l.Results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
