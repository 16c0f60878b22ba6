// Package tui provides terminal user interface components for sandbox-agent
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/substrate-dev/sandbox-agent/internal/provision"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionStop
	ActionRemove
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action  Action
	Sandbox *provision.Sandbox
}

// sandboxItem implements list.Item for sandbox display
type sandboxItem struct {
	sandbox *provision.Sandbox
}

func (i sandboxItem) Title() string {
	return i.sandbox.Name
}

func (i sandboxItem) Description() string {
	template := i.sandbox.Template
	if template == "" {
		template = "-"
	}

	return fmt.Sprintf("%s %s | %s | %s",
		statusIcon(i.sandbox.Status),
		i.sandbox.ID,
		template,
		truncateURL(i.sandbox.URL, 36),
	)
}

func (i sandboxItem) FilterValue() string {
	return i.sandbox.Name
}

func statusIcon(status string) string {
	switch status {
	case "running":
		return "✓"
	case "stopped":
		return "●"
	case "creating":
		return "○"
	default:
		return "⚠"
	}
}

func truncateURL(url string, maxLen int) string {
	if url == "" {
		return "-"
	}
	if len(url) <= maxLen {
		return url
	}
	return url[:maxLen-3] + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the sandbox picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new sandbox picker
func NewPicker(sandboxes []*provision.Sandbox) Model {
	items := make([]list.Item, len(sandboxes))
	for i, sb := range sandboxes {
		items[i] = sandboxItem{sandbox: sb}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "Sandbox Agent - Select Sandbox"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{
		list: l,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter", "s":
			if item, ok := m.list.SelectedItem().(sandboxItem); ok {
				m.result = PickerResult{
					Action:  ActionStart,
					Sandbox: item.sandbox,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "x":
			if item, ok := m.list.SelectedItem().(sandboxItem); ok {
				m.result = PickerResult{
					Action:  ActionStop,
					Sandbox: item.sandbox,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "d":
			if item, ok := m.list.SelectedItem().(sandboxItem); ok {
				m.result = PickerResult{
					Action:  ActionRemove,
					Sandbox: item.sandbox,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter/s] Start  [x] Stop  [d] Delete  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive sandbox picker
func RunPicker(sandboxes []*provision.Sandbox) (PickerResult, error) {
	if len(sandboxes) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(sandboxes)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive picker that just lists sandboxes
func SimplePicker(sandboxes []*provision.Sandbox) string {
	var b strings.Builder

	b.WriteString("Sandbox Agent - Sandboxes\n")
	b.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(sandboxes) == 0 {
		b.WriteString("No sandboxes found.\n")
		b.WriteString("Create one with: sandbox-agent up <name> -t <template>\n")
		return b.String()
	}

	for i, sb := range sandboxes {
		b.WriteString(fmt.Sprintf("%d. %s %s (%s)\n",
			i+1, statusIcon(sb.Status), sb.Name, sb.Status))
		b.WriteString(fmt.Sprintf("   ID: %s | URL: %s\n\n",
			sb.ID, truncateURL(sb.URL, 40)))
	}

	return b.String()
}
