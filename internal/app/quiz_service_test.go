package app_test

import (
	"context"
	"testing"

	"cyberaware-service/internal/app"
	"cyberaware-service/internal/domain"
	"cyberaware-service/internal/infra/memory"
)

// stubQuestions records the filters it receives so tests can assert the
// requested limit without depending on shuffle order.
type stubQuestions struct {
	bank    []domain.Question
	filters []domain.QuestionFilter
}

func (s *stubQuestions) ListQuestions(_ context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	s.filters = append(s.filters, filter)
	return domain.SelectQuestions(s.bank, filter, nil), nil
}

func (s *stubQuestions) GetQuestion(_ context.Context, id string) (domain.Question, error) {
	for _, q := range s.bank {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.Question{}, domain.ErrQuestionNotFound
}

func (s *stubQuestions) Categories(_ context.Context) ([]string, error) {
	return domain.QuestionCategories(s.bank), nil
}

// fourQuestions share the same correct option so answers stay deterministic
// regardless of question order.
func fourQuestions() []domain.Question {
	qs := make([]domain.Question, 4)
	for i := range qs {
		qs[i] = domain.Question{
			ID:            string(rune('a' + i)),
			Text:          "pick the second option",
			Options:       []string{"wrong", "right", "wrong", "wrong"},
			CorrectOption: 1,
			Difficulty:    "easy",
			Category:      "Phishing",
		}
	}
	return qs
}

func newQuizService(bank []domain.Question) (*app.QuizService, *stubQuestions) {
	questions := &stubQuestions{bank: bank}
	return app.NewQuizService(memory.NewSessionStore(), questions), questions
}

func TestStartSessionRapidRequestsSix(t *testing.T) {
	service, questions := newQuizService(memory.SeedQuestions())

	view, err := service.StartSession(context.Background(), app.ModeRapid, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(questions.filters) != 1 || questions.filters[0].Limit != 6 {
		t.Fatalf("expected one fetch with limit 6, got %+v", questions.filters)
	}
	if view.Stage != app.StageActive {
		t.Fatalf("expected active stage, got %s", view.Stage)
	}
	if view.Total != 6 {
		t.Fatalf("expected 6 questions, got %d", view.Total)
	}
}

func TestStartSessionEmptyResult(t *testing.T) {
	service, _ := newQuizService(memory.SeedQuestions())

	_, err := service.StartSession(context.Background(), app.ModeTrick, "No Such Category", "")
	if err != domain.ErrNoQuestions {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestStartSessionUnknownMode(t *testing.T) {
	service, _ := newQuizService(memory.SeedQuestions())

	if _, err := service.StartSession(context.Background(), app.Mode("marathon"), "", ""); err != domain.ErrUnknownMode {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSelectAnswerIsIdempotentPerQuestion(t *testing.T) {
	service, _ := newQuizService(fourQuestions())

	view, err := service.StartSession(context.Background(), app.ModeRapid, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	first, err := service.SelectAnswer(view.SessionID, 1)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !first.Correct {
		t.Fatalf("expected correct answer, got %+v", first)
	}

	// A second submission for the same question must not change anything.
	second, err := service.SelectAnswer(view.SessionID, 0)
	if err != nil {
		t.Fatalf("answer again: %v", err)
	}
	if second != first {
		t.Fatalf("expected recorded answer back, got %+v", second)
	}

	state, err := service.State(view.SessionID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if len(state.Answers) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(state.Answers))
	}
}

func TestLongestStreak(t *testing.T) {
	service, _ := newQuizService(fourQuestions())

	view, err := service.StartSession(context.Background(), app.ModeRapid, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// correct, correct, incorrect, correct -> longest streak 2
	for _, option := range []int{1, 1, 0, 1} {
		if _, err := service.SelectAnswer(view.SessionID, option); err != nil {
			t.Fatalf("answer: %v", err)
		}
		if _, err := service.Advance(view.SessionID); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	state, err := service.State(view.SessionID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Stage != app.StageResults {
		t.Fatalf("expected results stage, got %s", state.Stage)
	}
	if state.Score != 3 {
		t.Fatalf("expected score 3, got %d", state.Score)
	}
	if state.LongestStreak != 2 {
		t.Fatalf("expected longest streak 2, got %d", state.LongestStreak)
	}
}

func TestAnswerAfterResultsRejected(t *testing.T) {
	service, _ := newQuizService(fourQuestions())

	view, _ := service.StartSession(context.Background(), app.ModeRapid, "", "")
	for range fourQuestions() {
		if _, err := service.SelectAnswer(view.SessionID, 1); err != nil {
			t.Fatalf("answer: %v", err)
		}
		if _, err := service.Advance(view.SessionID); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if _, err := service.SelectAnswer(view.SessionID, 1); err != domain.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
	if _, err := service.Advance(view.SessionID); err != domain.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
}

func TestResetReturnsToSetup(t *testing.T) {
	service, _ := newQuizService(fourQuestions())

	view, _ := service.StartSession(context.Background(), app.ModeRapid, "", "")
	if _, err := service.SelectAnswer(view.SessionID, 1); err != nil {
		t.Fatalf("answer: %v", err)
	}

	state, err := service.Reset(view.SessionID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if state.Stage != app.StageSetup || state.Total != 0 || len(state.Answers) != 0 {
		t.Fatalf("expected clean setup state, got %+v", state)
	}
}

func TestRetryRefetchesUnderSameSettings(t *testing.T) {
	service, questions := newQuizService(memory.SeedQuestions())

	view, err := service.StartSession(context.Background(), app.ModeScenario, "", "medium")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := service.Retry(context.Background(), view.SessionID); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(questions.filters) != 2 {
		t.Fatalf("expected a second fetch, got %d", len(questions.filters))
	}
	if questions.filters[1] != questions.filters[0] {
		t.Fatalf("retry changed settings: %+v vs %+v", questions.filters[1], questions.filters[0])
	}
}

func TestUnknownSession(t *testing.T) {
	service, _ := newQuizService(fourQuestions())

	if _, err := service.State("missing"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := service.SelectAnswer("missing", 0); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestProgressRounding(t *testing.T) {
	service, _ := newQuizService(fourQuestions()[:3])

	view, err := service.StartSession(context.Background(), app.ModeRapid, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	// 1 of 3 -> 33, 2 of 3 -> 67
	if view.Progress != 33 {
		t.Fatalf("expected progress 33, got %d", view.Progress)
	}
	next, err := service.Advance(view.SessionID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if next.Progress != 67 {
		t.Fatalf("expected progress 67, got %d", next.Progress)
	}
}

func TestGradeBatchSubmission(t *testing.T) {
	service, _ := newQuizService(fourQuestions())

	result, err := service.Grade(context.Background(), []domain.SubmittedAnswer{
		{QuestionID: "a", Selected: 1},
		{QuestionID: "b", Selected: 0},
		{QuestionID: "ghost", Selected: 1},
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if result.Score != 1 || result.TotalQuestions != 3 {
		t.Fatalf("expected 1/3, got %d/%d", result.Score, result.TotalQuestions)
	}
	if result.Percentage != 33 {
		t.Fatalf("expected 33%%, got %d", result.Percentage)
	}
	if !result.Results[0].Correct || result.Results[1].Correct || result.Results[2].Correct {
		t.Fatalf("unexpected per-question results %+v", result.Results)
	}
}
