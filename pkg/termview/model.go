// Package termview previews an editor panel in the terminal. The panel is
// laid out at the terminal's width and redrawn as the width changes.
package termview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"editorpanel/pkg/layout"
)

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// statusLines is the number of terminal rows reserved below the grid.
const statusLines = 1

// Model is a bubbletea model around a panel.
type Model struct {
	title string
	panel *layout.Panel
	scale Scale

	cols, rows int
	width      float64 // Panel width granted, in panel units
	plan       *layout.Plan
	err        error
}

// New creates a model; the panel is laid out once the terminal size arrives.
func New(title string, panel *layout.Panel, scale Scale) Model {
	return Model{title: title, panel: panel, scale: scale}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(msg.Height-statusLines, 0)
		m.width = float64(m.cols) * m.scale.X
		m.relayout()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.width = max(m.width-m.scale.X, 0)
			m.relayout()
		case "right", "l":
			m.width = min(m.width+m.scale.X, float64(m.cols)*m.scale.X)
			m.relayout()
		}
	}
	return m, nil
}

// relayout runs both passes at the current width. Height is whatever the
// panel asks for, since it never compresses vertically.
func (m *Model) relayout() {
	desired := m.panel.Measure(layout.Size{Width: m.width, Height: layout.Unconstrained})
	m.plan, m.err = m.panel.Plan(layout.Size{Width: m.width, Height: desired.Height})
	if m.err == nil {
		m.plan.Apply()
	}
}

// Width returns the panel width currently granted.
func (m Model) Width() float64 {
	return m.width
}

// Plan returns the last layout plan, or nil before the first layout.
func (m Model) Plan() *layout.Plan {
	return m.plan
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("layout error: "+m.err.Error()) + "\n"
	}
	if m.plan == nil {
		return "waiting for terminal size...\n"
	}

	var b strings.Builder
	for _, line := range Draw(m.plan, m.cols, m.rows, m.scale) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	status := fmt.Sprintf(" %s  width %.0f  label %.0f  editor %.0f  ←/→ resize  q quit ",
		m.title, m.width, m.plan.LabelWidth, m.plan.EditorWidth)
	b.WriteString(statusStyle.Render(status))
	return b.String()
}

// Run starts an interactive preview on the terminal.
func Run(title string, panel *layout.Panel, scale Scale) error {
	p := tea.NewProgram(New(title, panel, scale), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
