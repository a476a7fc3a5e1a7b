package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/store"
)

// ErrEmptyInsight is returned when SaveInsight is given blank text.
var ErrEmptyInsight = errors.New("insight text is empty")

// Store persists assessment history, insights and the in-progress draft
// on top of a versioned key-value backend.
type Store struct {
	backend store.Backend
	log     *zap.Logger
}

// New creates a result store. A nil logger disables logging.
func New(backend store.Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: backend, log: log.Named("results")}
}

// loadRoot returns the decoded root and the version it was read at.
// An absent root yields (nil, 0). A malformed root is logged and reads as
// empty, keeping its version so the next write replaces it.
func (s *Store) loadRoot(ctx context.Context) (*assessment.UserData, int64, error) {
	e, err := s.backend.Read(ctx, store.RootKey)
	if err != nil {
		return nil, 0, fmt.Errorf("load history: %w", err)
	}
	if e == nil {
		return nil, 0, nil
	}

	ud, err := decodeRoot(store.RootKey, e.Value)
	if err != nil {
		s.log.Warn("ignoring malformed history", zap.Int64("version", e.Version), zap.Error(err))
		return assessment.NewUserData(SchemaVersion), e.Version, nil
	}
	return ud, e.Version, nil
}

// writeRoot stores ud if the root is still at version.
func (s *Store) writeRoot(ctx context.Context, ud *assessment.UserData, version int64) error {
	raw, err := encodeRoot(ud)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if _, err := s.backend.Write(ctx, store.RootKey, raw, version); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Load returns the full root, creating an empty one if none exists yet.
func (s *Store) Load(ctx context.Context) (*assessment.UserData, error) {
	ud, version, err := s.loadRoot(ctx)
	if err != nil {
		return nil, err
	}
	if ud != nil || version != 0 {
		return ud, nil
	}

	ud = assessment.NewUserData(SchemaVersion)
	err = s.writeRoot(ctx, ud, 0)
	var stale *store.ErrStaleWrite
	if errors.As(err, &stale) {
		// Another writer initialized it first.
		ud, _, err = s.loadRoot(ctx)
		if err == nil && ud == nil {
			ud = assessment.NewUserData(SchemaVersion)
		}
		return ud, err
	}
	if err != nil {
		return nil, err
	}
	s.log.Debug("initialized empty history")
	return ud, nil
}

// ListResults returns every stored result in completion order.
func (s *Store) ListResults(ctx context.Context) ([]assessment.AssessmentResult, error) {
	ud, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ud.Assessments, nil
}

// LatestResult returns the most recently appended result. ok is false when
// no assessment has been completed.
func (s *Store) LatestResult(ctx context.Context) (result assessment.AssessmentResult, ok bool, err error) {
	all, err := s.ListResults(ctx)
	if err != nil {
		return assessment.AssessmentResult{}, false, err
	}
	if len(all) == 0 {
		return assessment.AssessmentResult{}, false, nil
	}
	return all[len(all)-1], true, nil
}

// AppendResult adds result to the history and clears the draft. If another
// writer changed the history since it was read, the append is rejected with
// *store.ErrStaleWrite and nothing is written.
func (s *Store) AppendResult(ctx context.Context, result assessment.AssessmentResult) error {
	ud, version, err := s.loadRoot(ctx)
	if err != nil {
		return err
	}
	if ud == nil {
		ud = assessment.NewUserData(SchemaVersion)
	}

	ud.Assessments = append(ud.Assessments, result)
	if err := s.writeRoot(ctx, ud, version); err != nil {
		return err
	}
	s.log.Info("result appended",
		zap.String("result_id", result.ID),
		zap.Int("score", result.Score),
		zap.String("risk_level", string(result.Prediction.RiskLevel)),
		zap.Int("history_len", len(ud.Assessments)))

	if err := s.ClearInProgressAnswers(ctx); err != nil {
		return fmt.Errorf("result saved, draft not cleared: %w", err)
	}
	return nil
}

// SaveInsight appends a free-form journal note.
func (s *Store) SaveInsight(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyInsight
	}

	ud, version, err := s.loadRoot(ctx)
	if err != nil {
		return err
	}
	if ud == nil {
		ud = assessment.NewUserData(SchemaVersion)
	}
	ud.Insights = append(ud.Insights, text)
	return s.writeRoot(ctx, ud, version)
}

// Insights returns saved journal notes, oldest first.
func (s *Store) Insights(ctx context.Context) ([]string, error) {
	ud, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ud.Insights), nil
}

// WipeAll replaces the history and insights with an empty root and removes
// the draft. The root is overwritten rather than removed so its version keeps
// increasing: a writer holding a pre-wipe version stays stale.
func (s *Store) WipeAll(ctx context.Context) error {
	if err := s.writeRoot(ctx, assessment.NewUserData(SchemaVersion), store.AnyVersion); err != nil {
		return fmt.Errorf("wipe history: %w", err)
	}
	if err := s.backend.Remove(ctx, store.DraftKey); err != nil {
		return fmt.Errorf("wipe draft: %w", err)
	}
	s.log.Info("all data wiped")
	return nil
}

// SaveInProgressAnswers overwrites the draft slot.
func (s *Store) SaveInProgressAnswers(ctx context.Context, answers []assessment.Answer) error {
	if answers == nil {
		answers = []assessment.Answer{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if _, err := s.backend.Write(ctx, store.DraftKey, raw, store.AnyVersion); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// ReadInProgressAnswers returns the saved draft, or an error when the
// backend cannot be read. A missing or malformed draft is an empty one.
// Callers that write the draft back use this so a failed read cannot
// overwrite answers they never saw.
func (s *Store) ReadInProgressAnswers(ctx context.Context) ([]assessment.Answer, error) {
	e, err := s.backend.Read(ctx, store.DraftKey)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if e == nil {
		return []assessment.Answer{}, nil
	}

	answers, err := decodeDraft(store.DraftKey, e.Value)
	if err != nil {
		s.log.Warn("ignoring malformed draft", zap.Error(err))
		return []assessment.Answer{}, nil
	}
	return answers, nil
}

// LoadInProgressAnswers returns the saved draft. It never fails: a missing,
// unreadable or malformed draft is an empty one.
func (s *Store) LoadInProgressAnswers(ctx context.Context) []assessment.Answer {
	answers, err := s.ReadInProgressAnswers(ctx)
	if err != nil {
		s.log.Warn("draft unavailable", zap.Error(err))
		return []assessment.Answer{}
	}
	return answers
}

// ClearInProgressAnswers discards the draft. Clearing twice is fine.
func (s *Store) ClearInProgressAnswers(ctx context.Context) error {
	if err := s.backend.Remove(ctx, store.DraftKey); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
