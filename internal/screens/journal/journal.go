// Package journal lets the user record free-form insights.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/results"
	"github.com/abhisek/neurotrack/internal/screen"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/ui/components"
	"github.com/abhisek/neurotrack/internal/ui/layout"
	"github.com/abhisek/neurotrack/internal/ui/theme"
)

// MaxInsightLen caps a single journal entry.
const MaxInsightLen = 280

// recentShown is how many saved entries are listed under the input.
const recentShown = 5

type insightsLoadedMsg struct {
	Insights []string
	Err      error
}

type insightSavedMsg struct {
	Text string
	Err  error
}

// JournalScreen records a note and lists recent ones.
type JournalScreen struct {
	deps     screens.Deps
	input    components.TextInput
	insights []string
	loaded   bool
	saving   bool
	status   string
	failed   bool
	errMsg   string
}

var _ screen.Screen = (*JournalScreen)(nil)
var _ screen.KeyHintProvider = (*JournalScreen)(nil)

// New creates a journal screen with a focused input.
func New(deps screens.Deps) *JournalScreen {
	return &JournalScreen{
		deps:  deps,
		input: components.NewTextInput("How are you feeling today?", MaxInsightLen, 60),
	}
}

func (j *JournalScreen) Init() tea.Cmd {
	load := func() tea.Msg {
		insights, err := j.deps.Results.Insights(context.Background())
		return insightsLoadedMsg{Insights: insights, Err: err}
	}
	return tea.Batch(j.input.Init(), load)
}

func (j *JournalScreen) save(text string) tea.Cmd {
	return func() tea.Msg {
		return insightSavedMsg{Text: text, Err: j.deps.Results.SaveInsight(context.Background(), text)}
	}
}

func (j *JournalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsLoadedMsg:
		j.loaded = true
		if msg.Err != nil {
			j.errMsg = msg.Err.Error()
			return j, nil
		}
		j.insights = msg.Insights
		return j, nil

	case insightSavedMsg:
		j.saving = false
		j.failed = msg.Err != nil
		if msg.Err != nil {
			j.input.Submit(false)
			if errors.Is(msg.Err, results.ErrEmptyInsight) {
				j.status = "Write something first."
			} else {
				j.deps.Logger().Error("save insight", zap.Error(msg.Err))
				j.status = "Could not save: " + msg.Err.Error()
			}
			return j, nil
		}
		j.input.Submit(true)
		j.input.Clear()
		j.insights = append(j.insights, strings.TrimSpace(msg.Text))
		j.status = "Saved."
		return j, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if j.saving {
				return j, nil
			}
			j.saving = true
			return j, j.save(j.input.Value())
		}
		j.status = ""
	}

	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	return j, cmd
}

func (j *JournalScreen) View(width, height int) string {
	cw := screens.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Journal"))
	sections = append(sections, theme.Subtitle.Width(cw).Render("Notes are kept with your assessment history."))
	sections = append(sections, theme.Card.Width(cw).Render(j.input.View()))

	if j.status != "" {
		style := theme.Hint
		if j.failed {
			style = theme.ErrorText
		}
		sections = append(sections, style.Render(j.status))
	}

	switch {
	case j.errMsg != "":
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+j.errMsg))
	case !j.loaded:
		sections = append(sections, theme.Hint.Render("Loading entries..."))
	case len(j.insights) == 0:
		sections = append(sections, theme.Hint.Render("No entries yet."))
	default:
		var rows []string
		rows = append(rows, theme.Heading.Render(fmt.Sprintf("Recent entries (%d)", len(j.insights))), "")
		start := max(len(j.insights)-recentShown, 0)
		for i := len(j.insights) - 1; i >= start; i-- {
			rows = append(rows, theme.Body.Width(cw-6).Render("• "+j.insights[i]))
		}
		sections = append(sections, theme.Card.Width(cw).Render(strings.Join(rows, "\n")))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (j *JournalScreen) Title() string {
	return "Journal"
}

func (j *JournalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}
