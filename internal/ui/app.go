package ui

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/appswitch/internal/bindings"
	"github.com/1broseidon/appswitch/internal/switcher"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// model is the root bubbletea model for the switcher loop. Each keypress
// is dispatched against the registry; the view is re-rendered in full on
// every cycle.
type model struct {
	title     string
	registry  *bindings.Registry
	activator *switcher.Activator

	tableView string // rendered once; the registry is immutable
	status    string
	width     int
	height    int
}

// activationMsg carries the outcome of one activation attempt back into
// the update loop.
type activationMsg struct {
	result switcher.Result
}

func newModel(title string, registry *bindings.Registry, activator *switcher.Activator) model {
	return model{
		title:     title,
		registry:  registry,
		activator: activator,
		tableView: RenderTable(registry),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Update implements tea.Model. A bound letter dispatches an activation, an
// unbound letter is ignored, and any non-letter key is the exit gesture.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key, ok := letterFrom(msg)
		if !ok {
			return m, tea.Quit
		}
		app, bound := m.registry.Lookup(key)
		if !bound {
			return m, nil
		}
		return m, m.activateCmd(app)

	case activationMsg:
		m.status = msg.result.Message()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.tableView)
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press a bound key to switch windows. Any other key exits."))
	return b.String()
}

// activateCmd runs one activation attempt off the update path and feeds
// the result back as a message.
func (m model) activateCmd(fragment string) tea.Cmd {
	return func() tea.Msg {
		return activationMsg{result: m.activator.Activate(fragment)}
	}
}

// letterFrom extracts a single alphabetic keystroke from a key message.
// Everything else (digits, punctuation, escape, arrows, modified keys) is
// the documented exit gesture.
func letterFrom(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return "", false
	}
	r := msg.Runes[0]
	if !unicode.IsLetter(r) {
		return "", false
	}
	return string(r), true
}

// Run starts the interactive switcher loop and blocks until the exit
// gesture. The alt screen is used so each cycle repaints a cleared
// surface.
func Run(title string, registry *bindings.Registry, activator *switcher.Activator) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("appswitch requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(title, registry, activator), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interaction loop failed: %w", err)
	}
	return nil
}
