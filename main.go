package main

import (
	"fmt"
	"os"

	"launchbox/internal/config"
	"launchbox/internal/desktop"
	"launchbox/internal/launch"
	"launchbox/internal/models"
	"launchbox/internal/ui"
	"launchbox/internal/ui/components"
	"launchbox/internal/usage"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	debugMode = false // Enable with --debug flag
)

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Model is the main application model
type Model struct {
	cfg      *config.Config
	catalog  models.Catalog
	store    *usage.Store
	styleMap map[string]string
	theme    ui.Theme
	keys     ui.KeyMap

	// UI components
	input   textinput.Model
	results *components.ResultList
	preview *components.DescriptorPreview
	help    help.Model

	// State
	showPreview bool
	showHelp    bool
	width       int
	height      int
	status      string

	err error
}

// New builds the launcher model: index the descriptor directories, overlay
// persisted launch counts, and derive the theme from the style overrides.
func New() (*Model, error) {
	cfg := config.Default()
	settings, err := config.LoadSettings(config.SettingsPath())
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	cfg.Apply(settings)

	catalog := desktop.New(cfg.AppDirs...).Scan()
	debugLog("Indexed %d applications", len(catalog))

	store := usage.New(cfg.ConfPath)
	styleMap, err := store.Load(catalog)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.ConfPath, err)
	}

	theme := ui.NewTheme(styleMap)

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Search applications"
	input.PromptStyle = theme.Query
	input.TextStyle = theme.Query
	input.Focus()

	return &Model{
		cfg:      cfg,
		catalog:  catalog,
		store:    store,
		styleMap: styleMap,
		theme:    theme,
		keys:     ui.DefaultKeyMap(),
		input:    input,
		results:  components.NewResultList(catalog, theme),
		preview:  components.NewDescriptorPreview(theme),
		help:     help.New(),
	}, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = msg.Width - 4
		m.preview.SetSize(msg.Width-4, m.height/3)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.results.MoveUp()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.results.MoveDown()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Launch):
		return m.launchSelected()

	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	// Everything else edits the query.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.status = ""
		m.results.SetQuery(m.input.Value())
		m.refreshPreview()
	}
	return m, cmd
}

// launchSelected starts the selected application, records the launch, and
// quits. A failed process start keeps the launcher open; a failed config
// write is fatal and reported on exit.
func (m *Model) launchSelected() (tea.Model, tea.Cmd) {
	app := m.results.Current()
	if app == nil {
		return m, nil
	}

	if err := launch.Run(app, m.cfg.HomeDir); err != nil {
		debugLog("Launch failed: %v", err)
		m.status = fmt.Sprintf("launch failed: %v", err)
		return m, nil
	}

	app.LaunchCount++
	if err := m.store.Save(m.catalog, m.styleMap); err != nil {
		m.err = err
	}
	return m, tea.Quit
}

func (m *Model) refreshPreview() {
	if !m.showPreview {
		return
	}
	app := m.results.Current()
	if app == nil {
		return
	}
	if err := m.preview.Load(app.ID); err != nil {
		debugLog("Preview failed for %s: %v", app.ID, err)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	sections := []string{
		m.theme.Border.Width(max(m.width-2, 20)).Render(m.input.View()),
	}

	if list := m.results.View(m.input.Value()); list != "" {
		sections = append(sections, list)
	}
	if m.showPreview {
		if preview := m.preview.View(); preview != "" {
			sections = append(sections, preview)
		}
	}
	if m.status != "" {
		sections = append(sections, m.theme.Help.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func main() {
	// Check for flags
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("launchbox %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("launchbox - A terminal application launcher")
			fmt.Println()
			fmt.Println("Usage: launchbox [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println("  -d, --debug      Enable debug mode (logs to stderr)")
			fmt.Println()
			fmt.Println("Run without arguments to start the launcher.")
			return
		case "-d", "--debug", "debug":
			debugMode = true
			desktop.DebugMode = true
			fmt.Fprintln(os.Stderr, "[DEBUG] Debug mode enabled")
		}
	}

	m, err := New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if fm, ok := final.(*Model); ok && fm.err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", fm.err)
		os.Exit(1)
	}
}
