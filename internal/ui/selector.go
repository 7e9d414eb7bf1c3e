package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#666"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#70c7ba")).
			Bold(true).
			Underline(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fff"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#70c7ba"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444")).
			MarginTop(1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888"))
)

var selectorCategories = []string{"beginner", "intermediate", "advanced"}

// SelectorModel is the interactive profile picker behind the custom-setup
// template: profiles grouped by category tab, space to toggle.
type SelectorModel struct {
	categories []string
	profiles   map[string][]catalog.Profile
	selected   map[string]bool
	activeTab  int
	cursor     int
	confirmed  bool
	width      int
	height     int
}

// NewSelector starts from preselected profile IDs, typically a template's
// profile list when the user customizes a preset.
func NewSelector(preselected []string) SelectorModel {
	selected := make(map[string]bool)
	for _, id := range preselected {
		selected[id] = true
	}

	profiles := make(map[string][]catalog.Profile)
	for _, cat := range selectorCategories {
		profiles[cat] = catalog.ProfilesByCategory(cat)
	}

	return SelectorModel{
		categories: selectorCategories,
		profiles:   profiles,
		selected:   selected,
	}
}

func (m SelectorModel) Init() tea.Cmd {
	return nil
}

func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		items := m.profiles[m.categories[m.activeTab]]

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Right):
			m.activeTab = (m.activeTab + 1) % len(m.categories)
			m.cursor = 0

		case key.Matches(msg, keys.ShiftTab), key.Matches(msg, keys.Left):
			m.activeTab = (m.activeTab - 1 + len(m.categories)) % len(m.categories)
			m.cursor = 0

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(items)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Space):
			if m.cursor < len(items) {
				id := items[m.cursor].ID
				m.selected[id] = !m.selected[id]
			}

		case key.Matches(msg, keys.Enter):
			m.confirmed = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SelectorModel) View() string {
	var lines []string

	var tabs []string
	for i, cat := range m.categories {
		count := 0
		for _, p := range m.profiles[cat] {
			if m.selected[p.ID] {
				count++
			}
		}
		label := fmt.Sprintf("%s (%d)", cat, count)
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	lines = append(lines, "")

	for i, p := range m.profiles[m.categories[m.activeTab]] {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		checkbox := "[ ]"
		style := itemStyle
		if m.selected[p.ID] {
			checkbox = "[✓]"
			style = selectedStyle
		}

		lines = append(lines, fmt.Sprintf("%s%s %s %s", cursor, checkbox, style.Render(p.Name), descStyle.Render(p.Description)))
	}

	totalSelected := 0
	for _, v := range m.selected {
		if v {
			totalSelected++
		}
	}

	lines = append(lines, "")
	lines = append(lines, countStyle.Render(fmt.Sprintf("Selected: %d profiles", totalSelected)))
	lines = append(lines, helpStyle.Render("Tab/←→: switch category • ↑↓: navigate • Space: toggle • Enter: confirm • q: quit"))

	return strings.Join(lines, "\n")
}

// SelectedProfiles returns the chosen profile IDs in catalog order.
func (m SelectorModel) SelectedProfiles() []string {
	var out []string
	for _, p := range catalog.AllProfiles() {
		if m.selected[p.ID] {
			out = append(out, p.ID)
		}
	}
	return out
}

func (m SelectorModel) Confirmed() bool {
	return m.confirmed
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Space    key.Binding
	Enter    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Left:     key.NewBinding(key.WithKeys("left", "h")),
	Right:    key.NewBinding(key.WithKeys("right", "l")),
	Tab:      key.NewBinding(key.WithKeys("tab")),
	ShiftTab: key.NewBinding(key.WithKeys("shift+tab")),
	Space:    key.NewBinding(key.WithKeys(" ")),
	Enter:    key.NewBinding(key.WithKeys("enter")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// RunSelector runs the profile picker and returns the confirmed selection.
func RunSelector(preselected []string) ([]string, bool, error) {
	model := NewSelector(preselected)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m := finalModel.(SelectorModel)
	return m.SelectedProfiles(), m.Confirmed(), nil
}
