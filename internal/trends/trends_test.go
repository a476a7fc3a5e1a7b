package trends

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/catalog"
)

func result(score int, risk assessment.RiskLevel, day int, pcts map[catalog.CategoryID]float64) assessment.AssessmentResult {
	r := assessment.AssessmentResult{
		Score:       score,
		Prediction:  assessment.Prediction{RiskLevel: risk},
		CompletedAt: time.Date(2026, 2, day, 12, 0, 0, 0, time.UTC),
	}
	for _, c := range catalog.Default().Categories() {
		pct := pcts[c.ID]
		r.CategoryScores = append(r.CategoryScores, assessment.CategoryScore{
			Category:   c.ID,
			Score:      int(pct * float64(c.MaxScore) / 100),
			MaxScore:   c.MaxScore,
			Percentage: pct,
		})
	}
	return r
}

func history() []assessment.AssessmentResult {
	return []assessment.AssessmentResult{
		result(40, assessment.RiskHigh, 1, map[catalog.CategoryID]float64{
			catalog.CategoryDepression: 60, catalog.CategoryAnxiety: 50, catalog.CategoryStress: 75,
		}),
		result(25, assessment.RiskModerate, 8, map[catalog.CategoryID]float64{
			catalog.CategoryDepression: 40, catalog.CategoryAnxiety: 55,
		}),
		result(12, assessment.RiskLow, 15, map[catalog.CategoryID]float64{
			catalog.CategoryDepression: 20, catalog.CategoryAnxiety: 50, catalog.CategoryLifestyle: 25,
		}),
	}
}

func TestScoreTrend(t *testing.T) {
	pts := ScoreTrend(history())
	require.Len(t, pts, 3)
	assert.Equal(t, 1, pts[0].Index)
	assert.Equal(t, 12, pts[2].Score)
	assert.Equal(t, assessment.RiskLow, pts[2].Risk)
	assert.Empty(t, ScoreTrend(nil))
}

func TestCategoryChanges(t *testing.T) {
	changes := CategoryChanges(history())
	require.Len(t, changes, 5)

	byID := make(map[catalog.CategoryID]CategoryChange)
	for _, c := range changes {
		byID[c.Category] = c
	}

	dep := byID[catalog.CategoryDepression]
	assert.InDelta(t, -40, dep.Change, 1e-9)
	assert.True(t, dep.Improved())

	assert.True(t, byID[catalog.CategoryAnxiety].Unchanged())
	assert.False(t, byID[catalog.CategoryLifestyle].Improved())
	assert.True(t, byID[catalog.CategoryStress].Improved())

	assert.Nil(t, CategoryChanges(history()[:1]))
}

func TestTopCategory(t *testing.T) {
	top, ok := TopCategory(history()[0])
	require.True(t, ok)
	assert.Equal(t, catalog.CategoryStress, top.Category)

	_, ok = TopCategory(assessment.AssessmentResult{})
	assert.False(t, ok)
}

func TestTopCategory_TieGoesToFirst(t *testing.T) {
	r := assessment.AssessmentResult{CategoryScores: []assessment.CategoryScore{
		{Category: "a", Score: 2, MaxScore: 4},
		{Category: "b", Score: 4, MaxScore: 8},
	}}
	top, _ := TopCategory(r)
	assert.Equal(t, catalog.CategoryID("a"), top.Category)
}

func TestRiskCounts(t *testing.T) {
	counts := RiskCounts(history())
	assert.Equal(t, map[assessment.RiskLevel]int{
		assessment.RiskLow:      1,
		assessment.RiskModerate: 1,
		assessment.RiskHigh:     1,
	}, counts)

	empty := RiskCounts(nil)
	assert.Len(t, empty, 3)
}

func TestSummarize(t *testing.T) {
	s := Summarize(history())
	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.Latest)
	assert.Equal(t, 12, s.Latest.Score)
	assert.InDelta(t, 77.0/3, s.AverageScore, 1e-9)
	assert.Equal(t, 12, s.BestScore)
	assert.Equal(t, 40, s.WorstScore)
	assert.Equal(t, 1, s.FirstDate.Day())

	assert.Nil(t, Summarize(nil).Latest)
}
