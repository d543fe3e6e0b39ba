package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"launchbox/internal/ui"
)

// previewSizeLimit guards against descriptors that are not actually small
// text files.
const previewSizeLimit = 256 * 1024

// DescriptorPreview shows the raw descriptor file for the selected result,
// syntax highlighted, in a scrollable viewport.
type DescriptorPreview struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter
	theme       ui.Theme

	FilePath string
	Width    int
	Height   int
}

// NewDescriptorPreview creates a descriptor preview pane.
func NewDescriptorPreview(theme ui.Theme) *DescriptorPreview {
	vp := viewport.New(60, 12)
	return &DescriptorPreview{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		theme:       theme,
		Width:       60,
		Height:      12,
	}
}

// SetSize updates the pane dimensions.
func (p *DescriptorPreview) SetSize(width, height int) {
	p.Width = width
	p.Height = height

	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight := height - 3
	if contentHeight < 3 {
		contentHeight = 3
	}
	p.viewport.Width = contentWidth
	p.viewport.Height = contentHeight
}

// Load reads and highlights a descriptor file into the viewport.
func (p *DescriptorPreview) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > previewSizeLimit {
		p.FilePath = path
		p.viewport.SetContent(fmt.Sprintf("file too large to preview (%d bytes)", info.Size()))
		p.viewport.GotoTop()
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	p.FilePath = path
	p.viewport.SetContent(strings.Join(p.highlighter.HighlightLines(lines), "\n"))
	p.viewport.GotoTop()
	return nil
}

// Update forwards scroll events to the viewport.
func (p *DescriptorPreview) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the preview with its header and border.
func (p *DescriptorPreview) View() string {
	if p.FilePath == "" {
		return ""
	}
	header := p.theme.Comment.Render(filepath.Base(p.FilePath))
	return p.theme.Border.Width(p.Width - 2).Render(header + "\n" + p.viewport.View())
}
