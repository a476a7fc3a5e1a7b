package catalog

import (
	"strings"
	"testing"
)

func TestAllQuestions_Count(t *testing.T) {
	all := AllQuestions()
	if len(all) != 20 {
		t.Errorf("got %d questions, want 20", len(all))
	}
	if all[0].ID != "q1" || all[19].ID != "q20" {
		t.Errorf("unexpected order: first %q, last %q", all[0].ID, all[19].ID)
	}
}

func TestAllQuestions_ReturnsCopy(t *testing.T) {
	all := AllQuestions()
	all[0].Text = "mutated"

	again := AllQuestions()
	if again[0].Text == "mutated" {
		t.Error("AllQuestions must not expose internal storage")
	}
}

func TestQuestionsForCategory(t *testing.T) {
	tests := []struct {
		category CategoryID
		want     int
	}{
		{CategoryDepression, 7},
		{CategoryAnxiety, 7},
		{CategoryAttention, 4},
		{CategoryStress, 1},
		{CategoryLifestyle, 1},
		{"unknown", 0},
	}
	for _, tt := range tests {
		qs := QuestionsForCategory(tt.category)
		if len(qs) != tt.want {
			t.Errorf("QuestionsForCategory(%q): got %d, want %d", tt.category, len(qs), tt.want)
		}
		for _, q := range qs {
			if q.Category != tt.category {
				t.Errorf("question %q has category %q, want %q", q.ID, q.Category, tt.category)
			}
		}
	}
}

func TestQuestionsForCategory_PreservesOrder(t *testing.T) {
	qs := QuestionsForCategory(CategoryAttention)
	want := []string{"q15", "q16", "q17", "q18"}
	for i, q := range qs {
		if q.ID != want[i] {
			t.Errorf("position %d: got %q, want %q", i, q.ID, want[i])
		}
	}
}

func TestCategoryMaxScore(t *testing.T) {
	tests := []struct {
		category CategoryID
		want     int
	}{
		{CategoryDepression, 21},
		{CategoryAnxiety, 21},
		{CategoryAttention, 16},
		{CategoryStress, 4},
		{CategoryLifestyle, 4},
		{"nope", 0},
	}
	for _, tt := range tests {
		if got := CategoryMaxScore(tt.category); got != tt.want {
			t.Errorf("CategoryMaxScore(%q) = %d, want %d", tt.category, got, tt.want)
		}
	}
	if got := Default().TotalMaxScore(); got != 66 {
		t.Errorf("TotalMaxScore() = %d, want 66", got)
	}
}

func TestCategoryMaxScore_MatchesQuestions(t *testing.T) {
	c := Default()
	for _, cat := range c.Categories() {
		sum := 0
		for _, q := range c.QuestionsForCategory(cat.ID) {
			sum += q.MaxValue()
		}
		if got := c.CategoryMaxScore(cat.ID); got != sum {
			t.Errorf("category %q: max score %d, sum of question maxima %d", cat.ID, got, sum)
		}
	}
}

func TestCategoryDisplayName(t *testing.T) {
	if got := CategoryDisplayName(CategoryAttention); got != "Attention/Focus" {
		t.Errorf("got %q, want %q", got, "Attention/Focus")
	}
	if got := CategoryDisplayName("mystery"); got != "mystery" {
		t.Errorf("unknown category should echo its ID, got %q", got)
	}
}

func TestOption(t *testing.T) {
	c := Default()

	o, ok := c.Option("q15", "q15_a5")
	if !ok {
		t.Fatal("expected q15_a5 to exist")
	}
	if o.Text != "Very Often" || o.Value != 4 {
		t.Errorf("got %+v", o)
	}

	if _, ok := c.Option("q1", "q2_a1"); ok {
		t.Error("option of another question must not resolve")
	}
	if _, ok := c.Option("q99", "q99_a1"); ok {
		t.Error("option of unknown question must not resolve")
	}
}

func TestEveryQuestionHasKnownCategory(t *testing.T) {
	c := Default()
	for _, q := range c.AllQuestions() {
		if _, ok := c.Category(q.Category); !ok {
			t.Errorf("question %q has unknown category %q", q.ID, q.Category)
		}
		if len(q.Options) < 2 {
			t.Errorf("question %q has %d options", q.ID, len(q.Options))
		}
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown category",
			yaml: `
scales: {s: [{text: a, value: 0}, {text: b, value: 1}]}
categories: [{id: one, name: One}]
questions:
  - {id: q1, category: two, scale: s, text: x}
`,
			want: `references unknown category "two"`,
		},
		{
			name: "duplicate question",
			yaml: `
scales: {s: [{text: a, value: 0}]}
categories: [{id: one, name: One}]
questions:
  - {id: q1, category: one, scale: s, text: x}
  - {id: q1, category: one, scale: s, text: y}
`,
			want: `duplicate question ID: "q1"`,
		},
		{
			name: "missing scale",
			yaml: `
categories: [{id: one, name: One}]
questions:
  - {id: q1, category: one, scale: nope, text: x}
`,
			want: `question "q1" has no options`,
		},
		{
			name: "negative value",
			yaml: `
scales: {s: [{text: a, value: -1}]}
categories: [{id: one, name: One}]
questions:
  - {id: q1, category: one, scale: s, text: x}
`,
			want: "value must be >= 0",
		},
		{
			name: "empty category",
			yaml: `
scales: {s: [{text: a, value: 0}]}
categories: [{id: one, name: One}, {id: two, name: Two}]
questions:
  - {id: q1, category: one, scale: s, text: x}
`,
			want: `category "two" has no questions`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_DerivesOptionIDs(t *testing.T) {
	c, err := Parse([]byte(`
scales: {s: [{text: a, value: 0}, {text: b, value: 2}]}
categories: [{id: one, name: One}]
questions:
  - {id: x, category: one, scale: s, text: hello}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q, ok := c.Question("x")
	if !ok {
		t.Fatal("question x missing")
	}
	if q.Options[0].ID != "x_a1" || q.Options[1].ID != "x_a2" {
		t.Errorf("unexpected option IDs: %q, %q", q.Options[0].ID, q.Options[1].ID)
	}
	if c.CategoryMaxScore("one") != 2 {
		t.Errorf("max score = %d, want 2", c.CategoryMaxScore("one"))
	}
}
