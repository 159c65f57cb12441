package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for choice selection.
type selectModel struct {
	title    string
	choices  []Choice
	filtered []Choice
	cursor   int
	filter   string
	selected *Choice
	quitting bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(title string, choices []Choice) selectModel {
	return selectModel{
		title:    title,
		choices:  choices,
		filtered: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.filtered) {
			selected := m.filtered[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "backspace":
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case "esc":
		m.filter = ""
		m.applyFilter()
	default:
		if len(key) == 1 {
			m.filter += key
			m.applyFilter()
		}
	}

	return m, nil
}

// applyFilter keeps the choices whose key or label contains the filter.
func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.choices
	} else {
		filter := strings.ToLower(m.filter)
		m.filtered = []Choice{}
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Key), filter) ||
				strings.Contains(strings.ToLower(choice.Label), filter) {
				m.filtered = append(m.filtered, choice)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	fmt.Fprintf(&s, "? %s  [Use arrows to move, type to filter]\n\n", m.title)
	if m.filter != "" {
		fmt.Fprintf(&s, "Filter: %s\n\n", m.filter)
	}

	for i, choice := range m.filtered {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		fmt.Fprintf(&s, "%s %s\n", cursor, formatChoice(choice))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// formatChoice formats a choice for display.
func formatChoice(choice Choice) string {
	label := choice.Label
	if label == "" {
		label = choice.Key
	}
	if choice.Detail != "" {
		return fmt.Sprintf("%s : %s", label, choice.Detail)
	}
	return label
}

// promptSelectBubbleTea runs the Bubble Tea program for choice selection.
func promptSelectBubbleTea(title string, choices []Choice) (Choice, error) {
	finalModel, err := tea.NewProgram(initialSelectModel(title, choices)).Run()
	if err != nil {
		return Choice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return Choice{}, fmt.Errorf("unexpected model type %T", finalModel)
	}

	if model.selected == nil {
		return Choice{}, ErrNoSelection
	}

	return *model.selected, nil
}
