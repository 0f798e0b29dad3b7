package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ahoban/cardpick/internal/contacts"
	"github.com/ahoban/cardpick/internal/session"
)

// Styles
var (
	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	pickedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	emailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// row pairs a raw cached line with what the list shows for it
type row struct {
	raw    string
	name   string
	email  string
	parsed bool
}

// Model is the interactive contact picker
type Model struct {
	rows       []row
	filter     textinput.Model
	filterMode bool
	selected   int
	picked     map[int]bool
	pickOrder  []int
	width      int
	height     int
	canceled   bool
	done       bool
}

// NewModel creates a picker model over the given raw lines
func NewModel(lines []string) Model {
	rows := make([]row, len(lines))
	for i, line := range lines {
		rows[i] = row{raw: line}
		if c, ok := contacts.ParseLine(line); ok {
			rows[i].name = c.Name
			rows[i].email = c.Email
			rows[i].parsed = true
		}
	}

	// Setup filter input
	ti := textinput.New()
	ti.Placeholder = "Filter contacts..."
	ti.Width = 40
	ti.CharLimit = 100
	ti.Prompt = "> "

	return Model{
		rows:   rows,
		filter: ti,
		picked: make(map[int]bool),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 4 {
			m.filter.Width = m.width - 4
		}
		return m, nil

	case tea.KeyMsg:
		// Filter mode handling
		if m.filterMode {
			switch msg.String() {
			case "esc":
				m.filterMode = false
				m.filter.Blur()
				return m, nil
			case "enter":
				m.filterMode = false
				m.filter.Blur()
				m.selected = m.ensureValidSelection()
				return m, nil
			case "ctrl+c":
				m.canceled = true
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.selected = m.ensureValidSelection()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit

		case "enter":
			m.done = true
			return m, tea.Quit

		case "/":
			m.filterMode = true
			m.filter.Focus()
			return m, textinput.Blink

		case "j", "down":
			if m.selected < len(m.visibleRows())-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case " ", "tab":
			visible := m.visibleRows()
			if len(visible) > 0 && m.selected < len(visible) {
				idx := visible[m.selected]
				if m.picked[idx] {
					delete(m.picked, idx)
					for i, o := range m.pickOrder {
						if o == idx {
							m.pickOrder = append(m.pickOrder[:i], m.pickOrder[i+1:]...)
							break
						}
					}
				} else {
					m.picked[idx] = true
					m.pickOrder = append(m.pickOrder, idx)
				}
				// Advance so repeated toggles walk the list
				if m.selected < len(visible)-1 {
					m.selected++
				}
			}
		}
	}

	return m, nil
}

// visibleRows returns row indices matching the current filter
func (m Model) visibleRows() []int {
	var visible []int

	filter := strings.ToLower(m.filter.Value())
	for i, r := range m.rows {
		if filter == "" ||
			strings.Contains(strings.ToLower(r.name), filter) ||
			strings.Contains(strings.ToLower(r.email), filter) {
			visible = append(visible, i)
		}
	}

	return visible
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	visible := m.visibleRows()
	if len(visible) == 0 {
		return 0
	}
	if m.selected >= len(visible) {
		return len(visible) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// Selection returns the confirmed raw lines in the order they were
// picked. If nothing was toggled, the line under the cursor is the
// selection.
func (m Model) Selection() []string {
	if len(m.pickOrder) > 0 {
		lines := make([]string, 0, len(m.pickOrder))
		for _, idx := range m.pickOrder {
			lines = append(lines, m.rows[idx].raw)
		}
		return lines
	}

	visible := m.visibleRows()
	if len(visible) == 0 || m.selected >= len(visible) {
		return nil
	}
	return []string{m.rows[visible[m.selected]].raw}
}

// Canceled reports whether the user dismissed the picker
func (m Model) Canceled() bool {
	return m.canceled
}

// View renders the picker
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var lines []string

	if m.filterMode || m.filter.Value() != "" {
		lines = append(lines, m.filter.View())
		lines = append(lines, "")
	}

	visible := m.visibleRows()

	header := fmt.Sprintf("Contacts (%d", len(visible))
	if len(m.picked) > 0 {
		header += fmt.Sprintf(", %d picked", len(m.picked))
	}
	header += ")"
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("─", max(1, m.width-2)))

	// Calculate visible range
	visibleHeight := m.height - len(lines) - 2
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	for i := startIdx; i < len(visible) && i < startIdx+visibleHeight; i++ {
		r := m.rows[visible[i]]

		var line string
		if m.picked[visible[i]] {
			line = pickedStyle.Render("*") + " "
		} else {
			line = "  "
		}

		if r.parsed {
			line += r.name + " " + emailStyle.Render("<"+r.email+">")
		} else {
			line += r.raw
		}

		if i == m.selected {
			line = cursorStyle.Render(line)
		}

		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, helpStyle.Render("space: pick  enter: confirm  /: filter  q: quit"))

	return strings.Join(lines, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Picker runs the Bubble Tea program and adapts it to the
// session.Picker interface.
type Picker struct{}

// Pick presents lines in the interactive picker and returns the
// confirmed subset, or session.ErrCanceled if the user backed out.
func (p Picker) Pick(ctx context.Context, lines []string) ([]string, error) {
	prog := tea.NewProgram(NewModel(lines), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	model, ok := final.(Model)
	if !ok || model.Canceled() {
		return nil, session.ErrCanceled
	}

	return model.Selection(), nil
}
