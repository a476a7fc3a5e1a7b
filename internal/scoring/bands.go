package scoring

import "github.com/abhisek/neurotrack/internal/assessment"

// Band maps a range of normalized scores to a prediction.
// A band applies when normalized < Upper; the last band has Upper > 1.
type Band struct {
	Upper  float64
	Label  string
	Risk   assessment.RiskLevel
	Base   float64
	Spread float64
}

// Probability returns Base + Spread*jitter.
func (b Band) Probability(jitter float64) float64 {
	return b.Base + b.Spread*jitter
}

// DefaultBands returns the prediction bands in ascending order.
func DefaultBands() []Band {
	return []Band{
		{Upper: 0.3, Label: "Healthy", Risk: assessment.RiskLow, Base: 0.85, Spread: 0.10},
		{Upper: 0.6, Label: "Mild Concern", Risk: assessment.RiskModerate, Base: 0.70, Spread: 0.15},
		{Upper: 2, Label: "Significant Concern", Risk: assessment.RiskHigh, Base: 0.75, Spread: 0.20},
	}
}

// bandFor returns the first band whose upper bound exceeds normalized.
func bandFor(bands []Band, normalized float64) Band {
	for _, b := range bands {
		if normalized < b.Upper {
			return b
		}
	}
	return bands[len(bands)-1]
}
