package assessment

import (
	"time"

	"github.com/abhisek/neurotrack/internal/catalog"
)

// RiskLevel is the coarse risk tier of a prediction.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// AllRiskLevels returns the risk levels from lowest to highest.
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskModerate, RiskHigh}
}

// DisplayName returns a capitalized label for the risk level.
func (r RiskLevel) DisplayName() string {
	switch r {
	case RiskLow:
		return "Low"
	case RiskModerate:
		return "Moderate"
	case RiskHigh:
		return "High"
	default:
		return string(r)
	}
}

// Answer records the option chosen for one question.
type Answer struct {
	QuestionID       string `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
	Value            int    `json:"value"` // copy of the option's point value
}

// CategoryScore is the subtotal for one category.
type CategoryScore struct {
	Category   catalog.CategoryID `json:"category"`
	Score      int                `json:"score"`
	MaxScore   int                `json:"maxScore"`
	Percentage float64            `json:"percentage"` // 0-100
}

// Ratio returns Score/MaxScore, or 0 when MaxScore is 0.
func (c CategoryScore) Ratio() float64 {
	if c.MaxScore <= 0 {
		return 0
	}
	return float64(c.Score) / float64(c.MaxScore)
}

// Prediction is the risk classification derived from the overall score.
type Prediction struct {
	Label       string    `json:"label"`
	Probability float64   `json:"probability"` // 0.0-1.0
	RiskLevel   RiskLevel `json:"riskLevel"`
}

// AssessmentResult is the outcome of one completed questionnaire pass.
// It is immutable once created.
type AssessmentResult struct {
	ID             string          `json:"id,omitempty"`
	Score          int             `json:"score"`
	Prediction     Prediction      `json:"prediction"`
	CategoryScores []CategoryScore `json:"categoryScores"`
	CompletedAt    time.Time       `json:"completedAt"`
}

// CategoryScore returns the subtotal for the given category.
func (r AssessmentResult) CategoryScore(id catalog.CategoryID) (CategoryScore, bool) {
	for _, cs := range r.CategoryScores {
		if cs.Category == id {
			return cs, true
		}
	}
	return CategoryScore{}, false
}

// UserData is the persisted root object: full result history plus insights.
type UserData struct {
	SchemaVersion string             `json:"schemaVersion,omitempty"`
	Assessments   []AssessmentResult `json:"assessments"`
	Insights      []string           `json:"insights"`
}

// NewUserData returns an empty root at the given schema version.
func NewUserData(schemaVersion string) *UserData {
	return &UserData{
		SchemaVersion: schemaVersion,
		Assessments:   []AssessmentResult{},
		Insights:      []string{},
	}
}
