package scoring

import "github.com/abhisek/neurotrack/internal/catalog"

// Severity is the band a category percentage falls into.
type Severity int

const (
	SeverityMinimal Severity = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
)

func (s Severity) String() string {
	switch s {
	case SeverityMinimal:
		return "minimal"
	case SeverityMild:
		return "mild"
	case SeverityModerate:
		return "moderate"
	default:
		return "severe"
	}
}

// SeverityOf returns the band for a percentage (0-100).
func SeverityOf(percentage float64) Severity {
	switch {
	case percentage < 25:
		return SeverityMinimal
	case percentage < 50:
		return SeverityMild
	case percentage < 75:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// wording per category, indexed by Severity.
var wording = map[catalog.CategoryID][4]string{
	catalog.CategoryDepression: {
		"Minimal depressive symptoms",
		"Mild depressive symptoms",
		"Moderate depressive symptoms",
		"Severe depressive symptoms",
	},
	catalog.CategoryAnxiety: {
		"Minimal anxiety symptoms",
		"Mild anxiety symptoms",
		"Moderate anxiety symptoms",
		"Severe anxiety symptoms",
	},
	catalog.CategoryAttention: {
		"Minimal attention difficulties",
		"Mild attention difficulties",
		"Moderate attention difficulties",
		"Significant attention difficulties",
	},
	catalog.CategoryStress: {
		"Low stress levels",
		"Moderate stress levels",
		"High stress levels",
		"Very high stress levels",
	},
	catalog.CategoryLifestyle: {
		"Healthy lifestyle factors",
		"Some lifestyle concerns",
		"Moderate lifestyle concerns",
		"Significant lifestyle concerns",
	},
}

// Interpret returns a short description of a category percentage.
// Unknown categories get a generic severity label.
func Interpret(id catalog.CategoryID, percentage float64) string {
	sev := SeverityOf(percentage)
	if w, ok := wording[id]; ok {
		return w[sev]
	}
	return sev.String()
}
