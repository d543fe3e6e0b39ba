package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"launchbox/internal/models"
)

func TestIsHexColor(t *testing.T) {
	valid := []string{"#111111", "#f8c291", "#ABCDEF", "#000000"}
	for _, s := range valid {
		if !isHexColor(s) {
			t.Errorf("%s should be a valid hex color", s)
		}
	}

	invalid := []string{"", "#fff", "111111", "#11111g", "#1111111", "Ubuntu,sans-11"}
	for _, s := range invalid {
		if isHexColor(s) {
			t.Errorf("%s should not be a valid hex color", s)
		}
	}
}

func TestColorOrFallsBackToDefault(t *testing.T) {
	style := map[string]string{"title": "not-a-color"}
	if got := colorOr(style, "title"); string(got) != "#111111" {
		t.Errorf("Expected default #111111, got %s", got)
	}

	style["title"] = "#abc123"
	if got := colorOr(style, "title"); string(got) != "#abc123" {
		t.Errorf("Expected override #abc123, got %s", got)
	}
}

func TestNewThemeFromDefaults(t *testing.T) {
	theme := NewTheme(models.DefaultStyle())

	if theme.Title.GetForeground() != theme.Query.GetForeground() {
		t.Error("Query and title should share the title color")
	}
	if !theme.Match.GetBold() {
		t.Error("Match style should be bold")
	}
	if !theme.CommentMatch.GetBold() {
		t.Error("Comment match style should be bold")
	}
}

func TestNewThemeUsesOverrides(t *testing.T) {
	style := models.DefaultStyle()
	style["match"] = "#ff0000"

	theme := NewTheme(style)
	if got, ok := theme.Match.GetForeground().(lipgloss.Color); !ok || string(got) != "#ff0000" {
		t.Errorf("Expected match color #ff0000, got %v", theme.Match.GetForeground())
	}
}
