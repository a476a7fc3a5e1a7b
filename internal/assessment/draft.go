package assessment

import (
	"fmt"
	"slices"

	"github.com/abhisek/neurotrack/internal/catalog"
)

// Upsert replaces the answer for a.QuestionID in place, or appends it when
// the question has not been answered yet. The input slice is not modified.
func Upsert(answers []Answer, a Answer) []Answer {
	out := slices.Clone(answers)
	for i := range out {
		if out[i].QuestionID == a.QuestionID {
			out[i] = a
			return out
		}
	}
	return append(out, a)
}

// Draft tracks an in-progress questionnaire pass.
type Draft struct {
	questions []catalog.Question
	answers   []Answer
	cursor    int
}

// NewDraft starts a pass over questions, resuming from previously saved
// answers. The cursor is placed after the last saved answer, clamped to the
// final question.
func NewDraft(questions []catalog.Question, saved []Answer) *Draft {
	d := &Draft{questions: questions}
	for _, a := range saved {
		d.answers = Upsert(d.answers, a)
	}
	if len(questions) > 0 {
		d.cursor = min(len(d.answers), len(questions)-1)
	}
	return d
}

// Len returns the number of questions in the pass.
func (d *Draft) Len() int {
	return len(d.questions)
}

// Index returns the cursor position.
func (d *Draft) Index() int {
	return d.cursor
}

// Current returns the question under the cursor.
func (d *Draft) Current() catalog.Question {
	return d.questions[d.cursor]
}

// IsLast reports whether the cursor is on the final question.
func (d *Draft) IsLast() bool {
	return d.cursor == len(d.questions)-1
}

// Selected returns the option chosen for questionID, if any.
func (d *Draft) Selected(questionID string) (string, bool) {
	for _, a := range d.answers {
		if a.QuestionID == questionID {
			return a.SelectedOptionID, true
		}
	}
	return "", false
}

// Select records optionID for the current question and advances the cursor
// unless it is already on the final question. Re-selecting replaces the
// earlier choice.
func (d *Draft) Select(optionID string) error {
	q := d.Current()
	opt, ok := q.Option(optionID)
	if !ok {
		return fmt.Errorf("option %q does not belong to question %q", optionID, q.ID)
	}

	d.answers = Upsert(d.answers, Answer{
		QuestionID:       q.ID,
		SelectedOptionID: opt.ID,
		Value:            opt.Value,
	})

	if !d.IsLast() {
		d.cursor++
	}
	return nil
}

// Back moves to the previous question. Returns false at the first question.
func (d *Draft) Back() bool {
	if d.cursor == 0 {
		return false
	}
	d.cursor--
	return true
}

// Next moves forward, but only past a question that has been answered.
func (d *Draft) Next() bool {
	if d.IsLast() {
		return false
	}
	if _, ok := d.Selected(d.Current().ID); !ok {
		return false
	}
	d.cursor++
	return true
}

// Answered returns the number of answered questions.
func (d *Draft) Answered() int {
	return len(d.answers)
}

// Progress returns the answered fraction (0.0-1.0).
func (d *Draft) Progress() float64 {
	if len(d.questions) == 0 {
		return 0
	}
	return float64(len(d.answers)) / float64(len(d.questions))
}

// Complete reports whether every question has an answer.
func (d *Draft) Complete() bool {
	for _, q := range d.questions {
		if _, ok := d.Selected(q.ID); !ok {
			return false
		}
	}
	return len(d.questions) > 0
}

// Answers returns a copy of the collected answers in answer order.
func (d *Draft) Answers() []Answer {
	return slices.Clone(d.answers)
}

// Reset discards all answers and rewinds to the first question.
func (d *Draft) Reset() {
	d.answers = nil
	d.cursor = 0
}
