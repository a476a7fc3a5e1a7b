package results

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/assessment"
	resultstore "github.com/abhisek/neurotrack/internal/results"
	"github.com/abhisek/neurotrack/internal/router"
	"github.com/abhisek/neurotrack/internal/scoring"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/store"
)

func testDeps(t *testing.T) screens.Deps {
	t.Helper()
	return screens.Deps{
		Results: resultstore.New(store.NewMemory(), zap.NewNop()),
		Engine: scoring.NewEngine(scoring.Config{
			Jitter: scoring.Midpoint,
			Now:    func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
		}),
	}
}

// scored answers every question with the option at index idx.
func scored(t *testing.T, e *scoring.Engine, idx int) assessment.AssessmentResult {
	t.Helper()
	var answers []assessment.Answer
	for _, q := range e.Catalog().AllQuestions() {
		a, err := e.NewAnswer(q.ID, q.Options[idx].ID)
		require.NoError(t, err)
		answers = append(answers, a)
	}
	return e.Score(answers)
}

func TestResultsScreen_Title(t *testing.T) {
	assert.Equal(t, "Results", New(testDeps(t), nil).Title())
}

func TestResultsScreen_GivenResult(t *testing.T) {
	deps := testDeps(t)
	res := scored(t, deps.Engine, 0)

	r := New(deps, &res)
	assert.Nil(t, r.Init())

	view := r.View(100, 40)
	assert.Contains(t, view, "Healthy")
	assert.Contains(t, view, "Score 0 / 66")
	assert.Contains(t, view, "Maintain Your Well-being")
	assert.Contains(t, view, "not a diagnosis")
}

func TestResultsScreen_HighRiskShowsSupport(t *testing.T) {
	deps := testDeps(t)
	res := scored(t, deps.Engine, 2)
	require.Equal(t, assessment.RiskHigh, res.Prediction.RiskLevel)

	view := New(deps, &res).View(100, 60)
	assert.Contains(t, view, "Recommendations")
	assert.Contains(t, view, "Seek Professional Help")
	assert.Contains(t, view, "Immediate Support Resources")
	assert.NotContains(t, view, "Maintain Your Well-being")
}

func TestResultsScreen_LoadsLatest(t *testing.T) {
	deps := testDeps(t)
	ctx := context.Background()
	require.NoError(t, deps.Results.AppendResult(ctx, scored(t, deps.Engine, 0)))
	require.NoError(t, deps.Results.AppendResult(ctx, scored(t, deps.Engine, 2)))

	r := New(deps, nil)
	assert.Contains(t, r.View(100, 40), "Loading")
	r.Update(r.Init()())

	require.NotNil(t, r.result)
	assert.Equal(t, 40, r.result.Score)
	assert.Contains(t, r.View(100, 40), "Significant Concern")
}

func TestResultsScreen_EmptyStateRoutesToAssessment(t *testing.T) {
	deps := testDeps(t)
	r := New(deps, nil)
	r.Update(r.Init()())

	assert.Contains(t, r.View(100, 40), "No assessment results yet")

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(screens.NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, screens.RouteAssessment, msg.Route)
	assert.True(t, msg.Replace)
}

func TestResultsScreen_EnterPopsWithResult(t *testing.T) {
	deps := testDeps(t)
	res := scored(t, deps.Engine, 1)
	r := New(deps, &res)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestResultsScreen_LoadError(t *testing.T) {
	mem := store.NewMemory()
	mem.SetFailure(assert.AnError)
	deps := testDeps(t)
	deps.Results = resultstore.New(mem, zap.NewNop())

	r := New(deps, nil)
	r.Update(r.Init()())
	assert.Contains(t, r.View(100, 40), "Error")
}

func TestResultsScreen_KeyHints(t *testing.T) {
	deps := testDeps(t)
	r := New(deps, nil)
	r.Update(r.Init()())
	hints := r.KeyHints()
	require.Len(t, hints, 2)
	assert.Equal(t, "Start assessment", hints[0].Description)
}
