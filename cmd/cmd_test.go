package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/catalog"
	"github.com/abhisek/neurotrack/internal/results"
	"github.com/abhisek/neurotrack/internal/store"
)

// harness runs commands against one database file.
type harness struct {
	t  *testing.T
	db string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("NEUROTRACK_DB", "")
	t.Setenv("NEUROTRACK_SCORING_JITTER", "fixed")
	return &harness{t: t, db: filepath.Join(t.TempDir(), "test.db")}
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--db", h.db))
	err := root.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run("", args...)
	require.NoError(h.t, err, out)
	return out
}

// answerAll answers every question with the option at index idx.
func (h *harness) answerAll(idx int) {
	h.t.Helper()
	for _, q := range catalog.AllQuestions() {
		h.mustRun("answer", q.ID, q.Options[idx].ID)
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("version")
	assert.Contains(t, out, "neurotrack (devel)")
	assert.Contains(t, out, "v1.0.0")
}

func TestQuestions(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("questions")
	assert.Contains(t, out, "20 questions, max score 66")

	out = h.mustRun("questions", "--category", "anxiety")
	assert.Contains(t, out, "[Anxiety]")
	assert.NotContains(t, out, "[Depression]")

	_, err := h.run("", "questions", "--category", "nope")
	assert.ErrorContains(t, err, `unknown category "nope"`)
}

func TestAnswerAndDraft(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.mustRun("draft"), "No assessment in progress")

	out := h.mustRun("answer", "q1", "q1_a2")
	assert.Contains(t, out, "Recorded q1 = q1_a2 (1/20 answered)")

	out = h.mustRun("answer", "q1", "q1_a4")
	assert.Contains(t, out, "(1/20 answered)", "re-answering replaces")

	out = h.mustRun("draft")
	assert.Contains(t, out, "Nearly every day")
	assert.Contains(t, out, "1/20 answered")
}

// unreadableDraft fails draft reads while writes still succeed.
type unreadableDraft struct {
	store.Backend
}

func (b unreadableDraft) Read(ctx context.Context, key string) (*store.Entry, error) {
	if key == store.DraftKey {
		return nil, &store.ErrPersistenceUnavailable{Op: "read " + key, Err: errors.New("i/o timeout")}
	}
	return b.Backend.Read(ctx, key)
}

func TestRecordAnswer_UnreadableDraftIsKept(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	saved := []assessment.Answer{
		{QuestionID: "q1", SelectedOptionID: "q1_a1", Value: 0},
		{QuestionID: "q2", SelectedOptionID: "q2_a2", Value: 1},
	}
	require.NoError(t, results.New(mem, nil).SaveInProgressAnswers(ctx, saved))

	_, err := recordAnswer(ctx, results.New(unreadableDraft{mem}, nil),
		assessment.Answer{QuestionID: "q3", SelectedOptionID: "q3_a1", Value: 0})
	var unavail *store.ErrPersistenceUnavailable
	require.True(t, errors.As(err, &unavail), "got %v", err)

	assert.Equal(t, saved, results.New(mem, nil).LoadInProgressAnswers(ctx))
}

func TestAnswerRejectsUnknownIDs(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "answer", "q99", "q99_a1")
	assert.Error(t, err)
	_, err = h.run("", "answer", "q1", "q2_a1")
	assert.Error(t, err)
}

func TestSubmitRequiresCompleteDraft(t *testing.T) {
	h := newHarness(t)
	h.mustRun("answer", "q1", "q1_a1")
	_, err := h.run("", "submit")
	assert.ErrorContains(t, err, "1 of 20 questions answered")
}

func TestSubmitAndResults(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.mustRun("results"), "No assessment results yet")
	assert.Equal(t, "null\n", h.mustRun("results", "--json"))

	h.answerAll(2)
	out := h.mustRun("submit")
	assert.Contains(t, out, "Score:       40 / 66")
	assert.Contains(t, out, "Significant Concern")
	assert.Contains(t, out, "Seek Professional Help:")
	assert.Contains(t, out, "Immediate Support Resources:")
	assert.Contains(t, out, "not a diagnosis")

	assert.Contains(t, h.mustRun("draft"), "No assessment in progress", "submit clears the draft")

	var got assessment.AssessmentResult
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("results", "--json")), &got))
	assert.Equal(t, 40, got.Score)
	assert.Equal(t, assessment.RiskHigh, got.Prediction.RiskLevel)
	assert.Len(t, got.CategoryScores, 5)
}

func TestHistory(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.mustRun("history"), "No assessment history yet")

	h.answerAll(2)
	h.mustRun("submit")
	h.answerAll(0)
	h.mustRun("submit")

	out := h.mustRun("history")
	assert.Contains(t, out, "2 assessments, average 20.0, best 0, worst 40")
	assert.Contains(t, out, "improved")

	var all []assessment.AssessmentResult
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("history", "--json")), &all))
	require.Len(t, all, 2)
	assert.Equal(t, 40, all[0].Score)
	assert.Equal(t, 0, all[1].Score)
}

func TestDiscard(t *testing.T) {
	h := newHarness(t)
	h.mustRun("answer", "q1", "q1_a1")
	assert.Contains(t, h.mustRun("discard"), "discarded")
	assert.Contains(t, h.mustRun("draft"), "No assessment in progress")
}

func TestInsights(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.mustRun("insight", "list"), "No journal entries yet")

	h.mustRun("insight", "add", "went", "for", "a", "walk")
	h.mustRun("insight", "add", "slept badly")

	out := h.mustRun("insight", "list")
	assert.Contains(t, out, "1. went for a walk")
	assert.Contains(t, out, "2. slept badly")

	_, err := h.run("", "insight", "add", "   ")
	assert.Error(t, err)
}

func TestModel(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("model")
	assert.Contains(t, out, "random-forest")
	assert.Contains(t, out, "Sleep Quality")
}

func TestResources(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("resources")
	assert.Contains(t, out, "Sleep and Mental Health")
	assert.Contains(t, out, "https://www.sleepfoundation.org/sleep-hygiene")
	assert.Contains(t, out, "Nelson Mandela")

	var topics []map[string]any
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("resources", "--json")), &topics))
	assert.Len(t, topics, 8)
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	h.answerAll(1)
	h.mustRun("submit")
	h.mustRun("insight", "add", "note")

	out, err := h.run("no\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
	assert.NotContains(t, h.mustRun("results"), "No assessment results yet")

	out, err = h.run("yes\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "All data deleted.")
	assert.Contains(t, h.mustRun("results"), "No assessment results yet")
	assert.Contains(t, h.mustRun("insight", "list"), "No journal entries yet")
}

func TestResetYesFlag(t *testing.T) {
	h := newHarness(t)
	h.mustRun("insight", "add", "note")
	assert.Contains(t, h.mustRun("reset", "--yes"), "All data deleted.")
}

func TestEphemeralDoesNotTouchDatabase(t *testing.T) {
	h := newHarness(t)
	h.mustRun("insight", "add", "kept in memory", "--ephemeral")
	assert.Contains(t, h.mustRun("insight", "list"), "No journal entries yet")
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t)
	t.Setenv("NEUROTRACK_SCORING_JITTER", "loud")
	_, err := h.run("", "results")
	assert.ErrorContains(t, err, "scoring.jitter")
}
