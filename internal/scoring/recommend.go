package scoring

import "github.com/abhisek/neurotrack/internal/assessment"

// Recommendation is a suggested next step for a risk tier.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var recommendations = map[assessment.RiskLevel][]Recommendation{
	assessment.RiskLow: {
		{"Maintain Your Well-being", "Continue your healthy habits and self-care routines. Regular exercise, proper sleep and social connections are key to maintaining good mental health."},
		{"Practice Mindfulness", "Consider adding mindfulness or meditation to your routine to further support your well-being."},
		{"Regular Check-ins", "Take this assessment periodically to monitor your mental health."},
	},
	assessment.RiskModerate: {
		{"Consider Professional Support", "Your results suggest you might benefit from speaking with a mental health professional who can offer personalized guidance."},
		{"Develop Coping Strategies", "Stress management techniques such as deep breathing, progressive muscle relaxation or mindfulness can help."},
		{"Focus on Self-Care", "Prioritize sleep, exercise and nutrition. Reduce alcohol and caffeine, which can worsen anxiety and mood."},
	},
	assessment.RiskHigh: {
		{"Seek Professional Help", "Your results suggest significant concerns that should be addressed by a mental health professional. Please consider reaching out to a therapist, psychologist or psychiatrist."},
		{"Immediate Support Resources", "If you are in crisis, contact a mental health helpline or emergency services. Help is available 24/7."},
		{"Regular Follow-up", "Once you have connected with a professional, regular follow-up appointments help monitor your progress."},
	},
}

var followUps = map[assessment.RiskLevel][]string{
	assessment.RiskLow: {
		"Continue your current mental health practices, which appear to be working well.",
		"Consider preventative measures like regular mindfulness practice and stress management.",
	},
	assessment.RiskModerate: {
		"Focus on improving sleep habits and stress management techniques.",
		"Consider speaking with a mental health professional about your specific concerns.",
	},
	assessment.RiskHigh: {
		"Speak with a mental health professional about your assessment results.",
		"Prioritize self-care activities and consider regular therapy sessions.",
	},
}

const trackProgress = "Take regular follow-up assessments to track your progress over time."

// Recommendations returns the suggested next steps for a risk tier. An
// unknown tier gets the high-risk list so support resources are never
// hidden.
func Recommendations(risk assessment.RiskLevel) []Recommendation {
	recs, ok := recommendations[risk]
	if !ok {
		recs = recommendations[assessment.RiskHigh]
	}
	return append([]Recommendation(nil), recs...)
}

// FollowUps returns short bullet suggestions for a risk tier, ending with a
// reminder to reassess.
func FollowUps(risk assessment.RiskLevel) []string {
	items, ok := followUps[risk]
	if !ok {
		items = followUps[assessment.RiskHigh]
	}
	out := append([]string(nil), items...)
	return append(out, trackProgress)
}
