package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// HighlightMatch renders text with the first case-insensitive occurrence
// of query emphasized using the match style. Text without a match renders
// entirely in the base style.
func HighlightMatch(text, query string, base, match lipgloss.Style) string {
	if query == "" {
		return base.Render(text)
	}
	i := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if i < 0 {
		return base.Render(text)
	}
	end := i + len(query)
	if end > len(text) {
		end = len(text)
	}
	var b strings.Builder
	if i > 0 {
		b.WriteString(base.Render(text[:i]))
	}
	b.WriteString(match.Render(text[i:end]))
	if end < len(text) {
		b.WriteString(base.Render(text[end:]))
	}
	return b.String()
}

// Highlighter provides syntax highlighting for descriptor previews.
// Desktop entries are close enough to INI for chroma's lexer.
type Highlighter struct {
	style *chroma.Style
	lexer chroma.Lexer
}

// NewHighlighter creates a new descriptor highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
		lexer: lexers.Get("ini"),
	}
}

// HighlightLine highlights a single descriptor line.
func (h *Highlighter) HighlightLine(line string) string {
	if h.lexer == nil {
		return line
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := h.style.Get(token.Type)
		text := token.Value

		if style.Colour.IsSet() {
			styled := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Colour.String()))
			if style.Bold == chroma.Yes {
				styled = styled.Bold(true)
			}
			result.WriteString(styled.Render(text))
		} else {
			result.WriteString(text)
		}
	}

	return result.String()
}

// HighlightLines highlights multiple lines.
func (h *Highlighter) HighlightLines(lines []string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = h.HighlightLine(line)
	}
	return result
}
