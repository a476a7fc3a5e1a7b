// Package resources browses the curated wellness reading list.
package resources

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurotrack/internal/resources"
	"github.com/abhisek/neurotrack/internal/screen"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/ui/layout"
	"github.com/abhisek/neurotrack/internal/ui/theme"
)

// ResourcesScreen lists topics on the left of a single card and expands the
// selected one.
type ResourcesScreen struct {
	topics   []resources.Topic
	quotes   []resources.Quote
	selected int
}

var _ screen.Screen = (*ResourcesScreen)(nil)
var _ screen.KeyHintProvider = (*ResourcesScreen)(nil)

// New creates a resources screen on the first topic.
func New() *ResourcesScreen {
	return &ResourcesScreen{
		topics: resources.Topics(),
		quotes: resources.Quotes(),
	}
}

func (r *ResourcesScreen) Init() tea.Cmd {
	return nil
}

func (r *ResourcesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if r.selected > 0 {
				r.selected--
			}
		case "down", "j":
			if r.selected < len(r.topics)-1 {
				r.selected++
			}
		}
	}
	return r, nil
}

func (r *ResourcesScreen) View(width, height int) string {
	cw := screens.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Wellness Resources"))

	var list []string
	for i, t := range r.topics {
		if i == r.selected {
			list = append(list, theme.Selected.Render("▸ "+t.Title))
		} else {
			list = append(list, "  "+t.Title)
		}
	}
	sections = append(sections, theme.Card.Width(cw).Render(strings.Join(list, "\n")))

	if len(r.topics) > 0 {
		t := r.topics[r.selected]
		rows := []string{
			theme.Heading.Render(t.Title),
			"",
			theme.Body.Width(cw - 6).Render(t.Description),
			"",
		}
		for _, l := range t.Links {
			rows = append(rows, fmt.Sprintf("• %s", l.Title),
				lipgloss.NewStyle().Foreground(theme.Accent).Render("  "+l.URL))
		}
		sections = append(sections, theme.Card.Width(cw).Render(strings.Join(rows, "\n")))
	}

	if len(r.quotes) > 0 {
		q := r.quotes[r.selected%len(r.quotes)]
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).
			Render(fmt.Sprintf("%q\n- %s", q.Text, q.Author)))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResourcesScreen) Title() string {
	return "Resources"
}

func (r *ResourcesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "Esc", Description: "Back"},
	}
}
