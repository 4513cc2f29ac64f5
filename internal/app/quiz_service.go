package app

import (
	"context"
	"math"

	"github.com/google/uuid"

	"cyberaware-service/internal/domain"
)

// QuestionRepository supplies quiz content (from cache/backing store). The
// order of returned questions is unspecified; callers must not assume a
// stable shuffle.
type QuestionRepository interface {
	ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error)
	GetQuestion(ctx context.Context, id string) (domain.Question, error)
	Categories(ctx context.Context) ([]string, error)
}

// SessionStore abstracts how quiz sessions are held between requests.
type SessionStore interface {
	Put(session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

// QuizService contains the quiz use cases: session lifecycle, question
// lookup, and batch grading.
type QuizService struct {
	sessions  SessionStore
	questions QuestionRepository
}

func NewQuizService(store SessionStore, questions QuestionRepository) *QuizService {
	return &QuizService{sessions: store, questions: questions}
}

// StartSession fetches a question set for the mode and filters and opens an
// active session. A query that matches no questions surfaces
// domain.ErrNoQuestions; the caller must change filters and start again.
func (s *QuizService) StartSession(ctx context.Context, mode Mode, category, difficulty string) (SessionView, error) {
	limit, err := mode.QuestionLimit()
	if err != nil {
		return SessionView{}, err
	}
	filter := domain.QuestionFilter{Category: category, Difficulty: difficulty, Limit: limit}
	questions, err := s.questions.ListQuestions(ctx, filter)
	if err != nil {
		return SessionView{}, err
	}

	session := newSession(uuid.NewString())
	if err := session.begin(mode, filter, questions); err != nil {
		return SessionView{}, err
	}
	s.sessions.Put(session)
	return session.Snapshot(), nil
}

// Retry re-fetches a fresh question set under the session's previous settings
// and restarts the same session.
func (s *QuizService) Retry(ctx context.Context, sessionID string) (SessionView, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return SessionView{}, domain.ErrSessionNotFound
	}
	mode, filter := session.settings()
	if _, err := mode.QuestionLimit(); err != nil {
		return SessionView{}, err
	}
	questions, err := s.questions.ListQuestions(ctx, filter)
	if err != nil {
		return SessionView{}, err
	}
	if err := session.begin(mode, filter, questions); err != nil {
		return SessionView{}, err
	}
	return session.Snapshot(), nil
}

// SelectAnswer records an answer for the session's current question.
func (s *QuizService) SelectAnswer(sessionID string, optionIndex int) (domain.Answer, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Answer{}, domain.ErrSessionNotFound
	}
	return session.SelectAnswer(optionIndex)
}

// Advance moves the session forward, entering results after the last question.
func (s *QuizService) Advance(sessionID string) (SessionView, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return SessionView{}, domain.ErrSessionNotFound
	}
	if err := session.Advance(); err != nil {
		return SessionView{}, err
	}
	return session.Snapshot(), nil
}

// Reset returns the session to setup and discards its run.
func (s *QuizService) Reset(sessionID string) (SessionView, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return SessionView{}, domain.ErrSessionNotFound
	}
	session.Reset()
	return session.Snapshot(), nil
}

// State returns the current snapshot of a session.
func (s *QuizService) State(sessionID string) (SessionView, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return SessionView{}, domain.ErrSessionNotFound
	}
	return session.Snapshot(), nil
}

// Questions exposes the filtered question query for direct consumption.
func (s *QuizService) Questions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	return s.questions.ListQuestions(ctx, filter)
}

// Question returns a single question by ID.
func (s *QuizService) Question(ctx context.Context, id string) (domain.Question, error) {
	return s.questions.GetQuestion(ctx, id)
}

// Categories lists the distinct question categories.
func (s *QuizService) Categories(ctx context.Context) ([]string, error) {
	return s.questions.Categories(ctx)
}

// Grade scores a stateless batch submission against the question bank.
// Unknown question IDs count as incorrect rather than failing the whole
// batch.
func (s *QuizService) Grade(ctx context.Context, answers []domain.SubmittedAnswer) (domain.GradeResult, error) {
	result := domain.GradeResult{
		TotalQuestions: len(answers),
		Results:        make([]domain.GradeEntry, 0, len(answers)),
	}
	for _, submitted := range answers {
		entry := domain.GradeEntry{QuestionID: submitted.QuestionID}
		if question, err := s.questions.GetQuestion(ctx, submitted.QuestionID); err == nil {
			entry.Correct = submitted.Selected == question.CorrectOption
		}
		if entry.Correct {
			result.Score++
		}
		result.Results = append(result.Results, entry)
	}
	if len(answers) > 0 {
		result.Percentage = int(math.Round(float64(result.Score) / float64(len(answers)) * 100))
	}
	return result, nil
}
