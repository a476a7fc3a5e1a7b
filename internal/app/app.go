package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/router"
	"github.com/abhisek/neurotrack/internal/screen"
	"github.com/abhisek/neurotrack/internal/screens"
	assessmentscreen "github.com/abhisek/neurotrack/internal/screens/assessment"
	"github.com/abhisek/neurotrack/internal/screens/dashboard"
	"github.com/abhisek/neurotrack/internal/screens/home"
	"github.com/abhisek/neurotrack/internal/screens/journal"
	"github.com/abhisek/neurotrack/internal/screens/reset"
	resourcesscreen "github.com/abhisek/neurotrack/internal/screens/resources"
	resultsscreen "github.com/abhisek/neurotrack/internal/screens/results"
	"github.com/abhisek/neurotrack/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   screens.Deps
	home   *home.HomeScreen
	router *router.Router
	width  int
	height int
}

// New creates an AppModel with the home screen at the root.
func New(deps screens.Deps) AppModel {
	homeScreen := home.New(deps)
	return AppModel{
		deps:   deps,
		home:   homeScreen,
		router: router.New(homeScreen),
	}
}

// build resolves a route to a fresh screen.
func (m AppModel) build(msg screens.NavigateMsg) screen.Screen {
	switch msg.Route {
	case screens.RouteAssessment:
		return assessmentscreen.New(m.deps)
	case screens.RouteResults:
		return resultsscreen.New(m.deps, msg.Result)
	case screens.RouteDashboard:
		return dashboard.New(m.deps)
	case screens.RouteJournal:
		return journal.New(m.deps)
	case screens.RouteReset:
		return reset.New(m.deps)
	case screens.RouteResources:
		return resourcesscreen.New()
	default:
		return nil
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.home.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screens.NavigateMsg:
		s := m.build(msg)
		if s == nil {
			m.deps.Logger().Warn("unknown route", zap.Stringer("route", msg.Route))
			return m, nil
		}
		m.deps.Logger().Debug("navigate",
			zap.Stringer("route", msg.Route), zap.Bool("replace", msg.Replace))
		if msg.Replace {
			return m, func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
		}
		return m, func() tea.Msg { return router.PushScreenMsg{Screen: s} }

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.home.Status(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps screens.Deps) error {
	p := tea.NewProgram(New(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
