package dashboard

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/results"
	"github.com/abhisek/neurotrack/internal/scoring"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/store"
)

func testDeps(t *testing.T) screens.Deps {
	t.Helper()
	return screens.Deps{
		Results: results.New(store.NewMemory(), zap.NewNop()),
		Engine: scoring.NewEngine(scoring.Config{
			Jitter: scoring.Midpoint,
			Now:    func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
		}),
	}
}

func seed(t *testing.T, deps screens.Deps, optionIdx ...int) {
	t.Helper()
	for _, idx := range optionIdx {
		var answers []assessment.Answer
		for _, q := range deps.Engine.Catalog().AllQuestions() {
			a, err := deps.Engine.NewAnswer(q.ID, q.Options[idx].ID)
			require.NoError(t, err)
			answers = append(answers, a)
		}
		require.NoError(t, deps.Results.AppendResult(context.Background(), deps.Engine.Score(answers)))
	}
}

func loaded(t *testing.T, deps screens.Deps) *DashboardScreen {
	t.Helper()
	d := New(deps)
	d.Update(d.Init()())
	require.True(t, d.loaded)
	return d
}

func TestDashboardScreen_Title(t *testing.T) {
	assert.Equal(t, "Dashboard", New(testDeps(t)).Title())
}

func TestDashboardScreen_EmptyHistory(t *testing.T) {
	d := loaded(t, testDeps(t))
	assert.Contains(t, d.View(100, 40), "No assessments yet")
}

func TestDashboardScreen_Overview(t *testing.T) {
	deps := testDeps(t)
	seed(t, deps, 2, 0)
	d := loaded(t, deps)

	view := d.View(100, 40)
	assert.Contains(t, view, "Assessments     2")
	assert.Contains(t, view, "Average score   20.0 / 66")
	assert.Contains(t, view, "Best / worst    0 / 40")
	assert.Contains(t, view, "Next steps")
	assert.Contains(t, view, "• Continue your current")
}

func TestDashboardScreen_TabNavigation(t *testing.T) {
	d := loaded(t, testDeps(t))

	d.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, TabTrends, d.tab)

	d.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	d.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, TabModel, d.tab, "left from the first tab wraps")

	d.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, TabHistory, d.tab)
}

func TestDashboardScreen_TrendsShowChanges(t *testing.T) {
	deps := testDeps(t)
	seed(t, deps, 2, 0)
	d := loaded(t, deps)
	d.tab = TabTrends

	view := d.View(100, 40)
	assert.Contains(t, view, "Score over time")
	assert.Contains(t, view, "↓")
}

func TestDashboardScreen_TrendsNeedTwoResults(t *testing.T) {
	deps := testDeps(t)
	seed(t, deps, 1)
	d := loaded(t, deps)
	d.tab = TabTrends

	assert.Contains(t, d.View(100, 40), "Complete another assessment")
}

func TestDashboardScreen_HistoryOpensSelected(t *testing.T) {
	deps := testDeps(t)
	seed(t, deps, 0, 1, 2)
	d := loaded(t, deps)
	d.tab = TabHistory

	d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, d.selected)

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(screens.NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, screens.RouteResults, msg.Route)
	assert.False(t, msg.Replace)
	require.NotNil(t, msg.Result)
	assert.Equal(t, 20, msg.Result.Score, "second newest")
}

func TestDashboardScreen_Insights(t *testing.T) {
	deps := testDeps(t)
	require.NoError(t, deps.Results.SaveInsight(context.Background(), "walked outside"))
	d := loaded(t, deps)
	d.tab = TabInsights

	assert.Contains(t, d.View(100, 40), "walked outside")
}

func TestDashboardScreen_Model(t *testing.T) {
	d := loaded(t, testDeps(t))
	d.tab = TabModel

	view := d.View(100, 40)
	assert.Contains(t, view, "random-forest")
	assert.Contains(t, view, "Sleep Quality")
}

func TestDashboardScreen_KeyHints(t *testing.T) {
	d := loaded(t, testDeps(t))
	assert.Len(t, d.KeyHints(), 2)
	d.tab = TabHistory
	assert.Len(t, d.KeyHints(), 4)
}
