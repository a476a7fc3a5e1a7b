// Package dashboard shows history analytics across several tabs.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/catalog"
	"github.com/abhisek/neurotrack/internal/modelinfo"
	"github.com/abhisek/neurotrack/internal/scoring"
	"github.com/abhisek/neurotrack/internal/screen"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/trends"
	"github.com/abhisek/neurotrack/internal/ui/components"
	"github.com/abhisek/neurotrack/internal/ui/layout"
	"github.com/abhisek/neurotrack/internal/ui/theme"
)

// Tab is a dashboard page.
type Tab int

const (
	TabOverview Tab = iota
	TabTrends
	TabHistory
	TabInsights
	TabModel
)

var tabNames = []string{"Overview", "Trends", "History", "Insights", "Model"}

func (t Tab) String() string { return tabNames[t] }

type dataLoadedMsg struct {
	Results  []assessment.AssessmentResult
	Insights []string
	Err      error
}

// DashboardScreen summarizes every stored assessment.
type DashboardScreen struct {
	deps     screens.Deps
	tab      Tab
	results  []assessment.AssessmentResult
	insights []string
	selected int // history row, newest first
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard on the overview tab.
func New(deps screens.Deps) *DashboardScreen {
	return &DashboardScreen{deps: deps}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		all, err := d.deps.Results.ListResults(ctx)
		if err != nil {
			return dataLoadedMsg{Err: err}
		}
		insights, err := d.deps.Results.Insights(ctx)
		if err != nil {
			return dataLoadedMsg{Err: err}
		}
		return dataLoadedMsg{Results: all, Insights: insights}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		d.loaded = true
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.errMsg = ""
		d.results = msg.Results
		d.insights = msg.Insights
		d.selected = min(d.selected, max(len(d.results)-1, 0))
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			d.tab = (d.tab + 1) % Tab(len(tabNames))
		case "left", "h", "shift+tab":
			d.tab = (d.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		case "1", "2", "3", "4", "5":
			d.tab = Tab(msg.String()[0] - '1')
		case "up", "k":
			if d.tab == TabHistory && d.selected > 0 {
				d.selected--
			}
		case "down", "j":
			if d.tab == TabHistory && d.selected < len(d.results)-1 {
				d.selected++
			}
		case "enter":
			if d.tab == TabHistory && len(d.results) > 0 {
				return d, screens.Show(d.results[len(d.results)-1-d.selected])
			}
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	if d.errMsg != "" {
		return screens.RenderError(width, d.errMsg)
	}
	if !d.loaded {
		return screens.RenderLoading(width, "dashboard")
	}

	cw := screens.ContentWidth(width)
	var body string
	switch d.tab {
	case TabOverview:
		body = d.viewOverview(cw)
	case TabTrends:
		body = d.viewTrends(cw)
	case TabHistory:
		body = d.viewHistory(cw, height)
	case TabInsights:
		body = d.viewInsights(cw)
	case TabModel:
		body = viewModel(cw)
	}

	content := d.viewTabs() + "\n\n" + body
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n"+content)
}

func (d *DashboardScreen) viewTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if Tab(i) == d.tab {
			parts[i] = theme.ButtonActive.Padding(0, 1).Render(label)
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1).Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (d *DashboardScreen) catalog() *catalog.Catalog {
	return d.deps.Engine.Catalog()
}

func (d *DashboardScreen) viewOverview(cw int) string {
	s := trends.Summarize(d.results)
	if s.Count == 0 {
		return screens.RenderEmpty(cw, "No assessments yet. Take one from the home menu.")
	}

	var rows []string
	rows = append(rows, theme.Heading.Render("Overview"), "")
	rows = append(rows, fmt.Sprintf("Assessments     %d  (since %s)", s.Count, s.FirstDate.Local().Format("Jan 02, 2006")))
	rows = append(rows, fmt.Sprintf("Average score   %.1f / %d", s.AverageScore, d.catalog().TotalMaxScore()))
	rows = append(rows, fmt.Sprintf("Best / worst    %d / %d", s.BestScore, s.WorstScore))
	latest := lipgloss.NewStyle().Foreground(screens.RiskColor(s.Latest.Prediction.RiskLevel)).Bold(true).
		Render(s.Latest.Prediction.Label)
	rows = append(rows, fmt.Sprintf("Latest          %d  %s", s.Latest.Score, latest))

	if top, ok := trends.TopCategory(*s.Latest); ok && top.Score > 0 {
		rows = append(rows, fmt.Sprintf("Focus area      %s (%.0f%%)",
			d.catalog().CategoryDisplayName(top.Category), top.Percentage))
	}

	rows = append(rows, "", theme.Heading.Render("Risk levels"), "")
	counts := trends.RiskCounts(d.results)
	for _, level := range assessment.AllRiskLevels() {
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("%-9s %3d", level.DisplayName(), counts[level]),
			Percent: float64(counts[level]) / float64(s.Count),
			Width:   cw - 6,
			Fill:    screens.RiskColor(level),
		}
		rows = append(rows, bar.View())
	}

	rows = append(rows, "", theme.Heading.Render("Next steps"), "")
	for _, item := range scoring.FollowUps(s.Latest.Prediction.RiskLevel) {
		rows = append(rows, theme.Body.Width(cw-6).Render("• "+item))
	}

	return theme.Card.Width(cw).Render(strings.Join(rows, "\n"))
}

func (d *DashboardScreen) viewTrends(cw int) string {
	points := trends.ScoreTrend(d.results)
	if len(points) == 0 {
		return screens.RenderEmpty(cw, "Trends appear after your first assessment.")
	}

	maxScore := d.catalog().TotalMaxScore()
	var rows []string
	rows = append(rows, theme.Heading.Render("Score over time"), "")

	// Most recent ten.
	start := max(len(points)-10, 0)
	for _, p := range points[start:] {
		pct := 0.0
		if maxScore > 0 {
			pct = float64(p.Score) / float64(maxScore)
		}
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("#%-3d %s %3d", p.Index, p.Date.Local().Format("Jan 02"), p.Score),
			Percent: pct,
			Width:   cw - 6,
			Fill:    screens.RiskColor(p.Risk),
		}
		rows = append(rows, bar.View())
	}

	changes := trends.CategoryChanges(d.results)
	rows = append(rows, "", theme.Heading.Render("Change since first assessment"), "")
	if len(changes) == 0 {
		rows = append(rows, theme.Hint.Render("Complete another assessment to compare."))
	}
	for _, c := range changes {
		var arrow string
		col := theme.TextDim
		switch {
		case c.Unchanged():
			arrow = "→"
		case c.Improved():
			arrow, col = "↓", theme.Success
		default:
			arrow, col = "↑", theme.Error
		}
		change := lipgloss.NewStyle().Foreground(col).Render(fmt.Sprintf("%s %+.0f%%", arrow, c.Change))
		rows = append(rows, fmt.Sprintf("%-16s %3.0f%% → %3.0f%%   %s",
			d.catalog().CategoryDisplayName(c.Category), c.First, c.Latest, change))
	}

	return theme.Card.Width(cw).Render(strings.Join(rows, "\n"))
}

func (d *DashboardScreen) viewHistory(cw, height int) string {
	if len(d.results) == 0 {
		return screens.RenderEmpty(cw, "No history yet.")
	}

	var rows []string
	rows = append(rows, theme.Heading.Render(fmt.Sprintf("History (%d)", len(d.results))), "")

	visible := max(height-12, 3)
	start := 0
	if d.selected >= visible {
		start = d.selected - visible + 1
	}
	end := min(start+visible, len(d.results))

	for i := start; i < end; i++ {
		r := d.results[len(d.results)-1-i]
		risk := lipgloss.NewStyle().Foreground(screens.RiskColor(r.Prediction.RiskLevel)).
			Render(fmt.Sprintf("%-18s", r.Prediction.Label))
		line := fmt.Sprintf("%s   %2d   %s", r.CompletedAt.Local().Format("2006-01-02 15:04"), r.Score, risk)
		if i == d.selected {
			rows = append(rows, theme.Selected.Render("▸ ")+line)
		} else {
			rows = append(rows, "  "+line)
		}
	}
	return theme.Card.Width(cw).Render(strings.Join(rows, "\n"))
}

func (d *DashboardScreen) viewInsights(cw int) string {
	if len(d.insights) == 0 {
		return screens.RenderEmpty(cw, "No journal entries yet. Add one from the Journal.")
	}
	var rows []string
	rows = append(rows, theme.Heading.Render("Journal"), "")
	for i := len(d.insights) - 1; i >= 0; i-- {
		rows = append(rows, theme.Body.Width(cw-6).Render("• "+d.insights[i]))
	}
	return theme.Card.Width(cw).Render(strings.Join(rows, "\n"))
}

func viewModel(cw int) string {
	best := modelinfo.BestModel()

	var rows []string
	rows = append(rows, theme.Heading.Render("Models"), "")
	rows = append(rows, fmt.Sprintf("%-14s %8s %9s %7s %6s", "", "Accuracy", "Precision", "Recall", "F1"))
	for _, m := range modelinfo.Models() {
		line := fmt.Sprintf("%-14s %8.3f %9.3f %7.3f %6.3f", m.Name, m.Accuracy, m.Precision, m.Recall, m.F1)
		if m.Name == best.Name {
			line = theme.Chosen.Render(line)
		}
		rows = append(rows, line)
	}

	rows = append(rows, "", theme.Heading.Render("Feature importance"), "")
	for _, f := range modelinfo.FeatureImportances() {
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("%-22s", f.Name),
			Percent: f.Importance / 0.2,
			Width:   cw - 6,
			Fill:    theme.Accent,
		}
		rows = append(rows, bar.View())
	}
	rows = append(rows, "", theme.Hint.Render("Illustrative figures. Predictions use fixed score bands."))
	return theme.Card.Width(cw).Render(strings.Join(rows, "\n"))
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←→/1-5", Description: "Tabs"}}
	if d.tab == TabHistory {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Select"},
			layout.KeyHint{Key: "Enter", Description: "Open"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}
