package scoring

import (
	"fmt"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/catalog"
)

// ErrUnknownQuestion indicates an answer references a question that is not
// in the catalog.
type ErrUnknownQuestion struct {
	QuestionID string
}

func (e *ErrUnknownQuestion) Error() string {
	return fmt.Sprintf("unknown question %q", e.QuestionID)
}

// ErrUnknownOption indicates an answer's option does not belong to its question.
type ErrUnknownOption struct {
	QuestionID string
	OptionID   string
}

func (e *ErrUnknownOption) Error() string {
	return fmt.Sprintf("option %q does not belong to question %q", e.OptionID, e.QuestionID)
}

// NewAnswer builds a catalog-consistent answer for the embedded catalog.
func NewAnswer(questionID, optionID string) (assessment.Answer, error) {
	return newAnswer(catalog.Default(), questionID, optionID)
}

func newAnswer(c *catalog.Catalog, questionID, optionID string) (assessment.Answer, error) {
	opt, err := resolve(c, questionID, optionID)
	if err != nil {
		return assessment.Answer{}, err
	}
	return assessment.Answer{
		QuestionID:       questionID,
		SelectedOptionID: opt.ID,
		Value:            opt.Value,
	}, nil
}

// Validate checks an answer against the embedded catalog.
func Validate(a assessment.Answer) error {
	_, err := resolve(catalog.Default(), a.QuestionID, a.SelectedOptionID)
	return err
}

func resolve(c *catalog.Catalog, questionID, optionID string) (catalog.Option, error) {
	q, ok := c.Question(questionID)
	if !ok {
		return catalog.Option{}, &ErrUnknownQuestion{QuestionID: questionID}
	}
	opt, ok := q.Option(optionID)
	if !ok {
		return catalog.Option{}, &ErrUnknownOption{QuestionID: questionID, OptionID: optionID}
	}
	return opt, nil
}
