package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/screen"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/ui/components"
	"github.com/abhisek/neurotrack/internal/ui/layout"
	"github.com/abhisek/neurotrack/internal/ui/theme"
)

type statusLoadedMsg struct {
	Count   int
	Latest  *assessment.AssessmentResult
	InDraft int
	Err     error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps    screens.Deps
	menu    components.Menu
	count   int
	latest  *assessment.AssessmentResult
	inDraft int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screens.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Take Assessment", Action: func() tea.Cmd { return screens.Push(screens.RouteAssessment) }},
		{Label: "Latest Results", Action: func() tea.Cmd { return screens.Push(screens.RouteResults) }},
		{Label: "Dashboard", Action: func() tea.Cmd { return screens.Push(screens.RouteDashboard) }},
		{Label: "Journal", Action: func() tea.Cmd { return screens.Push(screens.RouteJournal) }},
		{Label: "Resources", Action: func() tea.Cmd { return screens.Push(screens.RouteResources) }},
		{Label: "Reset Data", Action: func() tea.Cmd { return screens.Push(screens.RouteReset) }},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		all, err := h.deps.Results.ListResults(ctx)
		if err != nil {
			return statusLoadedMsg{Err: err}
		}
		msg := statusLoadedMsg{
			Count:   len(all),
			InDraft: len(h.deps.Results.LoadInProgressAnswers(ctx)),
		}
		if len(all) > 0 {
			latest := all[len(all)-1]
			msg.Latest = &latest
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statusLoadedMsg); ok {
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.count, h.latest, h.inDraft = msg.Count, msg.Latest, msg.InDraft
		if h.inDraft > 0 {
			h.menu.Items[0].Label = fmt.Sprintf("Resume Assessment (%d answered)", h.inDraft)
		} else {
			h.menu.Items[0].Label = "Take Assessment"
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := screens.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("NeuroTrack"))
	sections = append(sections, theme.Subtitle.Width(cw).Render("Mental health self-assessment"))
	sections = append(sections, h.renderStatus(cw))
	sections = append(sections, theme.Card.Width(cw).Render(h.menu.View()))
	sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(screens.Disclaimer))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStatus(cw int) string {
	style := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	switch {
	case h.errMsg != "":
		return style.Foreground(theme.Error).Render("Could not load history: " + h.errMsg)
	case !h.loaded:
		return style.Foreground(theme.TextDim).Render("Loading...")
	case h.latest == nil:
		return style.Foreground(theme.TextDim).Render("No assessments yet")
	}

	risk := lipgloss.NewStyle().
		Foreground(screens.RiskColor(h.latest.Prediction.RiskLevel)).
		Bold(true).
		Render(h.latest.Prediction.Label)
	return style.Foreground(theme.Text).Render(fmt.Sprintf(
		"%d assessment%s  ·  latest %s on %s",
		h.count, plural(h.count), risk, h.latest.CompletedAt.Local().Format("Jan 02, 2006")))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Status returns the header status line.
func (h *HomeScreen) Status() string {
	if !h.loaded || h.errMsg != "" {
		return ""
	}
	return fmt.Sprintf("%d assessment%s", h.count, plural(h.count))
}
