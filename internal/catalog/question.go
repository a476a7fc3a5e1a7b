package catalog

// CategoryID identifies a question category.
type CategoryID string

const (
	CategoryDepression CategoryID = "depression"
	CategoryAnxiety    CategoryID = "anxiety"
	CategoryAttention  CategoryID = "attention"
	CategoryStress     CategoryID = "stress"
	CategoryLifestyle  CategoryID = "lifestyle"
)

// Category groups related questions.
type Category struct {
	ID   CategoryID
	Name string

	// MaxScore is the sum of the highest option value of every question
	// tagged with this category. Computed at load time.
	MaxScore int
}

// Option is a single answer choice for a question.
type Option struct {
	ID    string
	Text  string
	Value int
}

// Question is a single self-report item.
type Question struct {
	ID       string
	Text     string
	Category CategoryID
	Options  []Option
}

// MaxValue returns the highest point value among the question's options.
func (q Question) MaxValue() int {
	best := 0
	for _, o := range q.Options {
		if o.Value > best {
			best = o.Value
		}
	}
	return best
}

// Option returns the option with the given ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// OptionIndex returns the position of the option with the given ID, or -1.
func (q Question) OptionIndex(id string) int {
	for i, o := range q.Options {
		if o.ID == id {
			return i
		}
	}
	return -1
}
