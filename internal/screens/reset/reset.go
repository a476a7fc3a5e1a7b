// Package reset confirms and performs a full data wipe.
package reset

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/router"
	"github.com/abhisek/neurotrack/internal/screen"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/ui/components"
	"github.com/abhisek/neurotrack/internal/ui/layout"
	"github.com/abhisek/neurotrack/internal/ui/theme"
)

type choiceMsg struct{ Wipe bool }

type wipedMsg struct{ Err error }

// ResetScreen asks before deleting all history, insights and the draft.
type ResetScreen struct {
	deps    screens.Deps
	buttons components.ButtonRow
	wiping  bool
	done    bool
	errMsg  string
}

var _ screen.Screen = (*ResetScreen)(nil)
var _ screen.KeyHintProvider = (*ResetScreen)(nil)

// New creates a reset screen with Cancel focused.
func New(deps screens.Deps) *ResetScreen {
	return &ResetScreen{
		deps: deps,
		buttons: components.NewButtonRow(
			components.NewButton("Cancel", true, func() tea.Cmd {
				return func() tea.Msg { return choiceMsg{Wipe: false} }
			}),
			components.NewButton("Delete everything", false, func() tea.Cmd {
				return func() tea.Msg { return choiceMsg{Wipe: true} }
			}),
		),
	}
}

func (r *ResetScreen) Init() tea.Cmd {
	return nil
}

func (r *ResetScreen) wipe() tea.Cmd {
	return func() tea.Msg {
		return wipedMsg{Err: r.deps.Results.WipeAll(context.Background())}
	}
}

func pop() tea.Msg { return router.PopScreenMsg{} }

func (r *ResetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case choiceMsg:
		if !msg.Wipe {
			return r, pop
		}
		r.wiping = true
		r.errMsg = ""
		return r, r.wipe()

	case wipedMsg:
		r.wiping = false
		if msg.Err != nil {
			r.deps.Logger().Error("wipe data", zap.Error(msg.Err))
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		r.done = true
		return r, nil

	case tea.KeyMsg:
		if r.done {
			if msg.String() == "enter" {
				return r, pop
			}
			return r, nil
		}
		if r.wiping {
			return r, nil
		}
		var cmd tea.Cmd
		r.buttons, cmd = r.buttons.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *ResetScreen) View(width, height int) string {
	cw := screens.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Foreground(theme.Error).Width(cw).Render("Reset all data"))

	switch {
	case r.done:
		sections = append(sections, theme.Subtitle.Width(cw).Render("All assessments, journal entries and saved progress were deleted."))
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render("Press Enter to return."))
	case r.wiping:
		sections = append(sections, theme.Subtitle.Width(cw).Render("Deleting..."))
	default:
		sections = append(sections, theme.Card.Width(cw).Render(
			"This permanently deletes every assessment result, journal entry\n"+
				"and any assessment in progress. It cannot be undone."))
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, r.buttons.View()))
	}

	if r.errMsg != "" {
		sections = append(sections, theme.ErrorText.Width(cw).Align(lipgloss.Center).Render("Error: "+r.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResetScreen) Title() string {
	return "Reset"
}

func (r *ResetScreen) KeyHints() []layout.KeyHint {
	if r.done {
		return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Cancel"},
	}
}
