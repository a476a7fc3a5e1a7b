package scoring

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/catalog"
)

// Config holds the engine's collaborators. Zero fields fall back to defaults.
type Config struct {
	Catalog *catalog.Catalog
	Jitter  JitterSource
	Bands   []Band
	Now     func() time.Time
	NewID   func() string
	Logger  *zap.Logger
}

// DefaultConfig returns an engine config over the embedded catalog with
// random jitter.
func DefaultConfig() Config {
	return Config{
		Catalog: catalog.Default(),
		Jitter:  NewRandomJitter(0),
		Bands:   DefaultBands(),
		Now:     time.Now,
		NewID:   uuid.NewString,
		Logger:  zap.NewNop(),
	}
}

// Engine turns a set of answers into an AssessmentResult. It never touches
// storage.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine, filling unset config fields with defaults.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Catalog == nil {
		cfg.Catalog = def.Catalog
	}
	if cfg.Jitter == nil {
		cfg.Jitter = def.Jitter
	}
	if len(cfg.Bands) == 0 {
		cfg.Bands = def.Bands
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = def.NewID
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return &Engine{cfg: cfg}
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cfg.Catalog
}

// NewAnswer builds a catalog-consistent answer.
func (e *Engine) NewAnswer(questionID, optionID string) (assessment.Answer, error) {
	return newAnswer(e.cfg.Catalog, questionID, optionID)
}

// Score computes category subtotals, the overall score and a prediction.
// When a question is answered more than once the last answer wins. Answers
// that do not resolve against the catalog are dropped.
func (e *Engine) Score(answers []assessment.Answer) assessment.AssessmentResult {
	cat := e.cfg.Catalog

	// Last occurrence wins, first-seen order kept for logging.
	latest := make(map[string]assessment.Answer, len(answers))
	var order []string
	for _, a := range answers {
		if _, seen := latest[a.QuestionID]; !seen {
			order = append(order, a.QuestionID)
		}
		latest[a.QuestionID] = a
	}

	sums := make(map[catalog.CategoryID]int)
	total := 0
	for _, qid := range order {
		a := latest[qid]
		opt, err := resolve(cat, a.QuestionID, a.SelectedOptionID)
		if err != nil {
			e.cfg.Logger.Warn("dropping invalid answer",
				zap.String("question_id", a.QuestionID),
				zap.String("option_id", a.SelectedOptionID),
				zap.Error(err))
			continue
		}
		if opt.Value != a.Value {
			e.cfg.Logger.Debug("answer value differs from catalog",
				zap.String("question_id", a.QuestionID),
				zap.Int("answer_value", a.Value),
				zap.Int("catalog_value", opt.Value))
		}
		q, _ := cat.Question(a.QuestionID)
		sums[q.Category] += opt.Value
		total += opt.Value
	}

	categories := cat.Categories()
	scores := make([]assessment.CategoryScore, 0, len(categories))
	for _, c := range categories {
		scores = append(scores, categoryScore(c, sums[c.ID]))
	}

	return assessment.AssessmentResult{
		ID:             e.cfg.NewID(),
		Score:          total,
		Prediction:     e.predict(total),
		CategoryScores: scores,
		CompletedAt:    e.cfg.Now(),
	}
}

func categoryScore(c catalog.Category, score int) assessment.CategoryScore {
	pct := 0.0
	if c.MaxScore > 0 {
		pct = float64(score) / float64(c.MaxScore) * 100
	}
	return assessment.CategoryScore{
		Category:   c.ID,
		Score:      score,
		MaxScore:   c.MaxScore,
		Percentage: pct,
	}
}

func (e *Engine) predict(total int) assessment.Prediction {
	normalized := 0.0
	if maxScore := e.cfg.Catalog.TotalMaxScore(); maxScore > 0 {
		normalized = float64(total) / float64(maxScore)
	}
	b := bandFor(e.cfg.Bands, normalized)

	j := e.cfg.Jitter.Float64()
	if j < 0 || j >= 1 {
		j = 0
	}
	return assessment.Prediction{
		Label:       b.Label,
		Probability: b.Probability(j),
		RiskLevel:   b.Risk,
	}
}
