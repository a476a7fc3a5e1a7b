package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurotrack/internal/ui/theme"
)

// MultiChoice is a single-answer option selector. Options can be picked
// with the arrows and Enter or directly with their number.
type MultiChoice struct {
	Question    string
	Options     []string
	Selected    int // cursor
	Previous    int // earlier answer, -1 when none
	Submitted   bool
	ChosenIndex int
}

// NewMultiChoice creates a selector. previous marks an earlier answer and
// places the cursor on it; pass -1 when there is none.
func NewMultiChoice(question string, options []string, previous int) MultiChoice {
	selected := 0
	if previous >= 0 && previous < len(options) {
		selected = previous
	} else {
		previous = -1
	}
	return MultiChoice{
		Question:    question,
		Options:     options,
		Selected:    selected,
		Previous:    previous,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			m.Submitted = true
			m.ChosenIndex = m.Selected
		}
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		mark := ""
		if i == m.Previous {
			mark = "  ✓"
		}
		line := fmt.Sprintf("%s%d)  %s%s", prefix, i+1, opt, mark)

		switch {
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		case i == m.Previous:
			s += theme.Chosen.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Reset clears a submission so the selector accepts input again.
func (m *MultiChoice) Reset() {
	m.Submitted = false
	m.ChosenIndex = -1
}
