package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/neurotrack/internal/assessment"
)

// Route names a top-level screen. The app resolves routes to screens so
// screen packages never import each other.
type Route int

const (
	RouteAssessment Route = iota
	RouteResults
	RouteDashboard
	RouteJournal
	RouteReset
	RouteResources
)

func (r Route) String() string {
	switch r {
	case RouteAssessment:
		return "assessment"
	case RouteResults:
		return "results"
	case RouteDashboard:
		return "dashboard"
	case RouteJournal:
		return "journal"
	case RouteReset:
		return "reset"
	case RouteResources:
		return "resources"
	default:
		return "unknown"
	}
}

// NavigateMsg asks the app to open a route. Result, when set, is shown by
// the results screen instead of the latest stored result.
type NavigateMsg struct {
	Route   Route
	Result  *assessment.AssessmentResult
	Replace bool
}

// Push opens route on top of the current screen.
func Push(route Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

// Replace swaps the current screen for route.
func Replace(route Route, result *assessment.AssessmentResult) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route, Result: result, Replace: true} }
}

// Show opens the results screen for a specific result.
func Show(result assessment.AssessmentResult) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: RouteResults, Result: &result} }
}
