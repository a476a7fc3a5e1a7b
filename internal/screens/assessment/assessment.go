// Package assessment implements the questionnaire screen.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/screen"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/store"
	"github.com/abhisek/neurotrack/internal/ui/components"
	"github.com/abhisek/neurotrack/internal/ui/layout"
	"github.com/abhisek/neurotrack/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseConfirm
	phaseSubmitting
)

type draftLoadedMsg struct {
	Answers []assessment.Answer
}

type draftSavedMsg struct {
	Err error
}

type submittedMsg struct {
	Result assessment.AssessmentResult
	Err    error
}

type confirmMsg struct{ Submit bool }

// AssessmentScreen walks the user through every catalog question.
type AssessmentScreen struct {
	deps    screens.Deps
	phase   phase
	draft   *assessment.Draft
	choice  components.MultiChoice
	confirm components.ButtonRow
	notice  string
	errMsg  string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates the assessment screen. The saved draft is loaded in Init.
func New(deps screens.Deps) *AssessmentScreen {
	return &AssessmentScreen{deps: deps}
}

func (a *AssessmentScreen) Init() tea.Cmd {
	a.phase = phaseLoading
	return func() tea.Msg {
		return draftLoadedMsg{Answers: a.deps.Results.LoadInProgressAnswers(context.Background())}
	}
}

func (a *AssessmentScreen) saveDraft() tea.Cmd {
	answers := a.draft.Answers()
	return func() tea.Msg {
		return draftSavedMsg{Err: a.deps.Results.SaveInProgressAnswers(context.Background(), answers)}
	}
}

func (a *AssessmentScreen) submit() tea.Cmd {
	answers := a.draft.Answers()
	return func() tea.Msg {
		result := a.deps.Engine.Score(answers)
		err := a.deps.Results.AppendResult(context.Background(), result)
		return submittedMsg{Result: result, Err: err}
	}
}

// loadChoice rebuilds the selector for the current question.
func (a *AssessmentScreen) loadChoice() {
	q := a.draft.Current()
	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = o.Text
	}
	previous := -1
	if id, ok := a.draft.Selected(q.ID); ok {
		previous = q.OptionIndex(id)
	}
	a.choice = components.NewMultiChoice(q.Text, opts, previous)
}

func (a *AssessmentScreen) enterConfirm() {
	a.phase = phaseConfirm
	a.confirm = components.NewButtonRow(
		components.NewButton("Submit", true, func() tea.Cmd {
			return func() tea.Msg { return confirmMsg{Submit: true} }
		}),
		components.NewButton("Review", false, func() tea.Cmd {
			return func() tea.Msg { return confirmMsg{Submit: false} }
		}),
	)
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case draftLoadedMsg:
		a.draft = assessment.NewDraft(a.deps.Engine.Catalog().AllQuestions(), msg.Answers)
		if a.draft.Len() == 0 {
			a.errMsg = "no questions available"
			return a, nil
		}
		a.phase = phaseAnswering
		if n := a.draft.Answered(); n > 0 {
			a.notice = fmt.Sprintf("Resumed with %d answer%s saved", n, plural(n))
		}
		a.loadChoice()
		return a, nil

	case draftSavedMsg:
		if msg.Err != nil {
			a.deps.Logger().Warn("draft autosave failed", zap.Error(msg.Err))
			a.notice = "Progress could not be saved"
		}
		return a, nil

	case confirmMsg:
		if !msg.Submit {
			a.phase = phaseAnswering
			a.loadChoice()
			return a, nil
		}
		a.phase = phaseSubmitting
		a.errMsg = ""
		return a, a.submit()

	case submittedMsg:
		if msg.Err != nil {
			a.deps.Logger().Error("submit assessment", zap.Error(msg.Err))
			a.enterConfirm()
			var stale *store.ErrStaleWrite
			if errors.As(msg.Err, &stale) {
				a.errMsg = "History changed in another session. Submit again to retry."
			} else {
				a.errMsg = msg.Err.Error()
			}
			return a, nil
		}
		result := msg.Result
		return a, screens.Replace(screens.RouteResults, &result)

	case tea.KeyMsg:
		switch a.phase {
		case phaseAnswering:
			return a.handleAnswerKey(msg)
		case phaseConfirm:
			var cmd tea.Cmd
			a.confirm, cmd = a.confirm.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

func (a *AssessmentScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if a.draft.Back() {
			a.notice = ""
			a.loadChoice()
		}
		return a, nil
	case "right", "l":
		if a.draft.IsLast() && a.draft.Complete() {
			a.enterConfirm()
			return a, nil
		}
		if a.draft.Next() {
			a.notice = ""
			a.loadChoice()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.choice, cmd = a.choice.Update(msg)
	if !a.choice.Submitted {
		return a, cmd
	}

	q := a.draft.Current()
	wasLast := a.draft.IsLast()
	if err := a.draft.Select(q.Options[a.choice.ChosenIndex].ID); err != nil {
		a.deps.Logger().Error("select option", zap.Error(err))
		a.choice.Reset()
		return a, nil
	}
	a.notice = ""

	switch {
	case wasLast && a.draft.Complete():
		a.enterConfirm()
	case wasLast:
		a.loadChoice()
		a.notice = fmt.Sprintf("%d question%s still unanswered. Use ← to go back.",
			a.draft.Len()-a.draft.Answered(), plural(a.draft.Len()-a.draft.Answered()))
	default:
		a.loadChoice()
	}
	return a, a.saveDraft()
}

func (a *AssessmentScreen) View(width, height int) string {
	cw := screens.ContentWidth(width)

	if a.errMsg != "" && a.draft == nil {
		return screens.RenderError(width, a.errMsg)
	}
	if a.phase == phaseLoading || a.draft == nil {
		return screens.RenderLoading(width, "assessment")
	}

	var content string
	switch a.phase {
	case phaseConfirm, phaseSubmitting:
		content = a.viewConfirm(cw)
	default:
		content = a.viewQuestion(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *AssessmentScreen) viewQuestion(cw int) string {
	q := a.draft.Current()
	cat := a.deps.Engine.Catalog().CategoryDisplayName(q.Category)

	var sections []string
	header := fmt.Sprintf("Question %d of %d", a.draft.Index()+1, a.draft.Len())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Heading.Render(header),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  "+cat)))

	bar := components.NewProgressBar("", a.draft.Progress(), true, cw)
	sections = append(sections, bar.View())
	sections = append(sections, theme.Card.Width(cw).Render(a.choice.View()))

	if a.notice != "" {
		sections = append(sections, theme.Hint.Render(a.notice))
	}
	return strings.Join(sections, "\n\n")
}

func (a *AssessmentScreen) viewConfirm(cw int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("All questions answered"))
	sections = append(sections, theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("%d of %d answered. Submit to see your results.", a.draft.Answered(), a.draft.Len())))

	if a.phase == phaseSubmitting {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Foreground(theme.TextDim).Render("Scoring..."))
	} else {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, a.confirm.View()))
	}
	if a.errMsg != "" {
		sections = append(sections, theme.ErrorText.Width(cw).Align(lipgloss.Center).Render(a.errMsg))
	}
	return strings.Join(sections, "\n\n")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func (a *AssessmentScreen) Title() string {
	return "Assessment"
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	if a.phase == phaseConfirm {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Save & exit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-5/Enter", Description: "Answer"},
		{Key: "←→", Description: "Back/Next"},
		{Key: "Esc", Description: "Save & exit"},
	}
}
