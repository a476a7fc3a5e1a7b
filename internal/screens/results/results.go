// Package results shows a scored assessment.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/catalog"
	"github.com/abhisek/neurotrack/internal/router"
	"github.com/abhisek/neurotrack/internal/scoring"
	"github.com/abhisek/neurotrack/internal/screen"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/trends"
	"github.com/abhisek/neurotrack/internal/ui/components"
	"github.com/abhisek/neurotrack/internal/ui/layout"
	"github.com/abhisek/neurotrack/internal/ui/theme"
)

type latestLoadedMsg struct {
	Result assessment.AssessmentResult
	OK     bool
	Err    error
}

// ResultsScreen displays one assessment result. With no result given it
// shows the latest stored one.
type ResultsScreen struct {
	deps   screens.Deps
	result *assessment.AssessmentResult
	fixed  bool
	loaded bool
	errMsg string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. A nil result loads the latest one.
func New(deps screens.Deps, result *assessment.AssessmentResult) *ResultsScreen {
	return &ResultsScreen{
		deps:   deps,
		result: result,
		fixed:  result != nil,
		loaded: result != nil,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.fixed {
		return nil
	}
	return func() tea.Msg {
		res, ok, err := r.deps.Results.LatestResult(context.Background())
		return latestLoadedMsg{Result: res, OK: ok, Err: err}
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case latestLoadedMsg:
		r.loaded = true
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		r.errMsg = ""
		if msg.OK {
			res := msg.Result
			r.result = &res
		} else {
			r.result = nil
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if r.loaded && r.result == nil && r.errMsg == "" {
				return r, screens.Replace(screens.RouteAssessment, nil)
			}
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "d":
			if r.result != nil {
				return r, screens.Replace(screens.RouteDashboard, nil)
			}
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	if r.errMsg != "" {
		return screens.RenderError(width, r.errMsg)
	}
	if !r.loaded {
		return screens.RenderLoading(width, "results")
	}
	if r.result == nil {
		return screens.RenderEmpty(width,
			"No assessment results yet.\n\n  Press Enter to take your first assessment.")
	}

	content := Render(r.deps.Engine.Catalog(), *r.result, screens.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Render draws a result card. The dashboard reuses it for history entries.
func Render(cat *catalog.Catalog, res assessment.AssessmentResult, cw int) string {
	var sections []string

	riskColor := screens.RiskColor(res.Prediction.RiskLevel)
	sections = append(sections, theme.Title.Width(cw).Render("Your Results"))
	sections = append(sections, theme.Subtitle.Width(cw).Render(
		res.CompletedAt.Local().Format("Monday, Jan 02 2006 at 15:04")))

	label := lipgloss.NewStyle().Foreground(riskColor).Bold(true).Render(res.Prediction.Label)
	summary := fmt.Sprintf("%s\n\nScore %d / %d  ·  %s risk  ·  %.0f%% confidence",
		label, res.Score, cat.TotalMaxScore(),
		res.Prediction.RiskLevel.DisplayName(), res.Prediction.Probability*100)
	sections = append(sections, theme.Card.Width(cw).Align(lipgloss.Center).Render(summary))

	var rows []string
	rows = append(rows, theme.Heading.Render("By category"), "")
	for _, cs := range res.CategoryScores {
		name := cat.CategoryDisplayName(cs.Category)
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-16s", name),
			Percent:     cs.Percentage / 100,
			ShowPercent: true,
			Width:       cw - 6,
			Fill:        screens.SeverityColor(scoring.SeverityOf(cs.Percentage)),
		}
		rows = append(rows, bar.View())
		rows = append(rows, theme.Hint.Render(fmt.Sprintf("  %d/%d  %s",
			cs.Score, cs.MaxScore, scoring.Interpret(cs.Category, cs.Percentage))))
	}
	if top, ok := trends.TopCategory(res); ok && top.Score > 0 {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(theme.Accent).Render(
			"Area needing most attention: "+cat.CategoryDisplayName(top.Category)))
	}
	sections = append(sections, theme.Card.Width(cw).Render(strings.Join(rows, "\n")))

	recs := []string{theme.Heading.Render("Recommendations")}
	for _, rec := range scoring.Recommendations(res.Prediction.RiskLevel) {
		recs = append(recs, "",
			lipgloss.NewStyle().Foreground(riskColor).Bold(true).Render(rec.Title),
			theme.Body.Width(cw-6).Render(rec.Description))
	}
	sections = append(sections, theme.Card.Width(cw).Render(strings.Join(recs, "\n")))
	sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(screens.Disclaimer))

	return strings.Join(sections, "\n\n")
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.loaded && r.result == nil && r.errMsg == "" {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start assessment"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "D", Description: "Dashboard"},
		{Key: "Enter/Esc", Description: "Back"},
	}
}
