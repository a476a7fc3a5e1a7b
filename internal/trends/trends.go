// Package trends derives dashboard views from a result history.
package trends

import (
	"time"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/catalog"
)

// Point is one entry of the overall score trend.
type Point struct {
	Index int // 1-based assessment number
	Date  time.Time
	Score int
	Risk  assessment.RiskLevel
}

// ScoreTrend returns one point per result, oldest first.
func ScoreTrend(results []assessment.AssessmentResult) []Point {
	points := make([]Point, 0, len(results))
	for i, r := range results {
		points = append(points, Point{
			Index: i + 1,
			Date:  r.CompletedAt,
			Score: r.Score,
			Risk:  r.Prediction.RiskLevel,
		})
	}
	return points
}

// CategoryChange compares a category between the first and latest result.
// Lower percentages are better.
type CategoryChange struct {
	Category catalog.CategoryID
	First    float64
	Latest   float64
	Change   float64 // Latest - First
}

// Improved reports whether the latest percentage is lower.
func (c CategoryChange) Improved() bool { return c.Change < 0 }

// Unchanged reports whether the percentage did not move.
func (c CategoryChange) Unchanged() bool { return c.Change == 0 }

// CategoryChanges returns per-category changes from the first to the latest
// result, in the latest result's category order. It needs at least two
// results.
func CategoryChanges(results []assessment.AssessmentResult) []CategoryChange {
	if len(results) < 2 {
		return nil
	}
	first, latest := results[0], results[len(results)-1]

	var out []CategoryChange
	for _, cs := range latest.CategoryScores {
		prev, ok := first.CategoryScore(cs.Category)
		if !ok {
			continue
		}
		out = append(out, CategoryChange{
			Category: cs.Category,
			First:    prev.Percentage,
			Latest:   cs.Percentage,
			Change:   cs.Percentage - prev.Percentage,
		})
	}
	return out
}

// TopCategory returns the category with the highest score-to-max ratio.
// Ties go to the earlier category.
func TopCategory(r assessment.AssessmentResult) (assessment.CategoryScore, bool) {
	var (
		top   assessment.CategoryScore
		found bool
	)
	for _, cs := range r.CategoryScores {
		if !found || cs.Ratio() > top.Ratio() {
			top, found = cs, true
		}
	}
	return top, found
}

// RiskCounts tallies results per risk level. Every level is present.
func RiskCounts(results []assessment.AssessmentResult) map[assessment.RiskLevel]int {
	counts := make(map[assessment.RiskLevel]int, 3)
	for _, lvl := range assessment.AllRiskLevels() {
		counts[lvl] = 0
	}
	for _, r := range results {
		counts[r.Prediction.RiskLevel]++
	}
	return counts
}

// Summary is the dashboard overview.
type Summary struct {
	Count        int
	Latest       *assessment.AssessmentResult
	AverageScore float64
	BestScore    int // lowest overall score
	WorstScore   int // highest overall score
	FirstDate    time.Time
}

// Summarize computes the overview for a history.
func Summarize(results []assessment.AssessmentResult) Summary {
	s := Summary{Count: len(results)}
	if len(results) == 0 {
		return s
	}

	latest := results[len(results)-1]
	s.Latest = &latest
	s.FirstDate = results[0].CompletedAt
	s.BestScore = results[0].Score
	s.WorstScore = results[0].Score

	total := 0
	for _, r := range results {
		total += r.Score
		s.BestScore = min(s.BestScore, r.Score)
		s.WorstScore = max(s.WorstScore, r.Score)
	}
	s.AverageScore = float64(total) / float64(len(results))
	return s
}
