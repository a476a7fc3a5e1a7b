package screens

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/scoring"
	"github.com/abhisek/neurotrack/internal/ui/theme"
)

// Disclaimer is shown wherever a prediction is displayed.
const Disclaimer = "This is a screening aid, not a diagnosis. If you are struggling, please reach out to a qualified professional."

// RiskColor maps a risk level to a theme color.
func RiskColor(r assessment.RiskLevel) color.Color {
	switch r {
	case assessment.RiskLow:
		return theme.Success
	case assessment.RiskModerate:
		return theme.Warning
	case assessment.RiskHigh:
		return theme.Error
	default:
		return theme.Text
	}
}

// SeverityColor maps a category severity band to a theme color.
func SeverityColor(s scoring.Severity) color.Color {
	switch s {
	case scoring.SeverityMinimal:
		return theme.Success
	case scoring.SeverityMild:
		return theme.Secondary
	case scoring.SeverityModerate:
		return theme.Warning
	default:
		return theme.Error
	}
}

// RenderLoading renders a centered loading line.
func RenderLoading(width int, what string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n  Loading %s...", what))
}

// RenderError renders a centered error line.
func RenderError(width int, err string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Error).
		Render(fmt.Sprintf("\n\nError: %s", err))
}

// RenderEmpty renders a centered, dimmed empty-state message.
func RenderEmpty(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
		Render("\n\n  " + msg)
}

// ContentWidth returns the width used for cards inside a frame.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}
