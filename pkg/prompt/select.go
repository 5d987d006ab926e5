package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is the Bubble Tea model of the notes file selector.
type selectModel struct {
	choices  []FileChoice
	filtered []FileChoice
	cursor   int
	filter   string
	selected *FileChoice
	quitting bool
}

func initialSelectModel(choices []FileChoice) selectModel {
	return selectModel{
		choices:  choices,
		filtered: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.filtered) {
			selected := m.filtered[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "backspace":
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			m = m.applyFilter()
		}
	case "esc":
		if m.filter == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.filter = ""
		m = m.applyFilter()
	default:
		if len(keyMsg.Runes) > 0 {
			m.filter += string(keyMsg.Runes)
			m = m.applyFilter()
		}
	}
	return m, nil
}

func (m selectModel) applyFilter() selectModel {
	if m.filter == "" {
		m.filtered = m.choices
	} else {
		needle := strings.ToLower(m.filter)
		m.filtered = nil
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Name), needle) {
				m.filtered = append(m.filtered, choice)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m
}

// View renders the selector.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder
	s.WriteString("? Choose the notes file:  [Use arrows to move, type to filter]\n\n")
	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}
	for i, choice := range m.filtered {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, formatFileChoice(choice)))
	}
	if len(m.filtered) == 0 {
		s.WriteString("  (no match)\n")
	}
	s.WriteString("\nPress Enter to select, Esc or Ctrl+C to quit")
	return s.String()
}

func formatFileChoice(choice FileChoice) string {
	if choice.Detail == "" {
		return choice.Name
	}
	return fmt.Sprintf("%s  (%s)", choice.Name, choice.Detail)
}

func promptSelectFileBubbleTea(choices []FileChoice) (FileChoice, error) {
	finalModel, err := tea.NewProgram(initialSelectModel(choices)).Run()
	if err != nil {
		return FileChoice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return FileChoice{}, ErrUnexpectedModel
	}
	if model.selected == nil {
		return FileChoice{}, ErrNoSelection
	}
	return *model.selected, nil
}
