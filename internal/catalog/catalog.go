package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// fileSchema mirrors the layout of questions.yaml.
type fileSchema struct {
	Scales     map[string][]scaleOption `yaml:"scales"`
	Categories []struct {
		ID   CategoryID `yaml:"id"`
		Name string     `yaml:"name"`
	} `yaml:"categories"`
	Questions []struct {
		ID       string     `yaml:"id"`
		Text     string     `yaml:"text"`
		Category CategoryID `yaml:"category"`
		Scale    string     `yaml:"scale"`
	} `yaml:"questions"`
}

type scaleOption struct {
	Text  string `yaml:"text"`
	Value int    `yaml:"value"`
}

// Catalog is the static question set with precomputed indices.
type Catalog struct {
	questions  []Question
	categories []Category
	byID       map[string]*Question
	byCategory map[CategoryID][]Question
	catIndex   map[CategoryID]int
	totalMax   int
}

// def is the process-wide catalog, loaded from the embedded YAML in init().
var def *Catalog

func init() {
	c, err := Parse(questionsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded questions are invalid: %v", err))
	}
	def = c
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return def
}

// Parse builds and validates a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f fileSchema
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	questions := make([]Question, 0, len(f.Questions))
	for _, fq := range f.Questions {
		q := Question{ID: fq.ID, Text: fq.Text, Category: fq.Category}
		for i, so := range f.Scales[fq.Scale] {
			q.Options = append(q.Options, Option{
				ID:    fmt.Sprintf("%s_a%d", fq.ID, i+1),
				Text:  so.Text,
				Value: so.Value,
			})
		}
		questions = append(questions, q)
	}

	categories := make([]Category, 0, len(f.Categories))
	for _, fc := range f.Categories {
		categories = append(categories, Category{ID: fc.ID, Name: fc.Name})
	}

	return build(categories, questions)
}

// build validates the inputs and computes indices and category max scores.
func build(categories []Category, questions []Question) (*Catalog, error) {
	if err := validate(categories, questions); err != nil {
		return nil, err
	}

	c := &Catalog{
		questions:  questions,
		categories: categories,
		byID:       make(map[string]*Question, len(questions)),
		byCategory: make(map[CategoryID][]Question),
		catIndex:   make(map[CategoryID]int, len(categories)),
	}

	for i := range c.categories {
		c.catIndex[c.categories[i].ID] = i
	}

	for i := range c.questions {
		q := &c.questions[i]
		c.byID[q.ID] = q
		c.byCategory[q.Category] = append(c.byCategory[q.Category], *q)
		c.categories[c.catIndex[q.Category]].MaxScore += q.MaxValue()
	}

	for _, cat := range c.categories {
		c.totalMax += cat.MaxScore
	}

	return c, nil
}

// AllQuestions returns every question in presentation order.
func (c *Catalog) AllQuestions() []Question {
	return slices.Clone(c.questions)
}

// QuestionsForCategory returns the questions tagged with id, order preserved.
// Unknown categories yield an empty slice.
func (c *Catalog) QuestionsForCategory(id CategoryID) []Question {
	return slices.Clone(c.byCategory[id])
}

// Question returns the question with the given ID.
func (c *Catalog) Question(id string) (Question, bool) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Option returns the option optionID of question questionID. It reports
// false when the question is unknown or the option belongs to another question.
func (c *Catalog) Option(questionID, optionID string) (Option, bool) {
	q, ok := c.byID[questionID]
	if !ok {
		return Option{}, false
	}
	return q.Option(optionID)
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Category returns the category with the given ID.
func (c *Catalog) Category(id CategoryID) (Category, bool) {
	i, ok := c.catIndex[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// CategoryDisplayName returns the human-readable name for a category,
// or the ID itself when the category is unknown.
func (c *Catalog) CategoryDisplayName(id CategoryID) string {
	if cat, ok := c.Category(id); ok {
		return cat.Name
	}
	return string(id)
}

// CategoryMaxScore returns the maximum attainable score for a category,
// or 0 when the category is unknown.
func (c *Catalog) CategoryMaxScore(id CategoryID) int {
	if cat, ok := c.Category(id); ok {
		return cat.MaxScore
	}
	return 0
}

// TotalMaxScore is the sum of every category's max score.
func (c *Catalog) TotalMaxScore() int {
	return c.totalMax
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Package-level accessors over the embedded catalog.

// AllQuestions returns every question of the embedded catalog.
func AllQuestions() []Question { return def.AllQuestions() }

// QuestionsForCategory filters the embedded catalog by category.
func QuestionsForCategory(id CategoryID) []Question { return def.QuestionsForCategory(id) }

// CategoryDisplayName returns the display name of a category, echoing unknown IDs.
func CategoryDisplayName(id CategoryID) string { return def.CategoryDisplayName(id) }

// CategoryMaxScore returns a category's max score, 0 for unknown IDs.
func CategoryMaxScore(id CategoryID) int { return def.CategoryMaxScore(id) }
