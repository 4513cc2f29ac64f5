package app

import (
	"math"
	"sync"

	"cyberaware-service/internal/domain"
)

// Stage is the quiz session phase. Transitions are monotonic within one run:
// setup -> active -> results, with reset (from anywhere) returning to setup.
type Stage string

const (
	StageSetup   Stage = "setup"
	StageActive  Stage = "active"
	StageResults Stage = "results"
)

// Mode fixes how many questions a run requests.
type Mode string

const (
	ModeRapid    Mode = "rapid"
	ModeScenario Mode = "scenario"
	ModeTrick    Mode = "trick"
)

// QuestionLimit returns the question count for the mode.
func (m Mode) QuestionLimit() (int, error) {
	switch m {
	case ModeRapid:
		return 6, nil
	case ModeScenario:
		return 8, nil
	case ModeTrick:
		return 10, nil
	default:
		return 0, domain.ErrUnknownMode
	}
}

// Session holds one quiz attempt. The question set is fixed once fetched;
// answers are append-only with at most one per question. Methods are safe for
// concurrent use since the transport layer may race on one session.
type Session struct {
	id string

	mu           sync.RWMutex
	stage        Stage
	mode         Mode
	filter       domain.QuestionFilter
	questions    []domain.Question
	answers      []domain.Answer
	currentIndex int
}

func newSession(id string) *Session {
	return &Session{id: id, stage: StageSetup}
}

// NewSession is exported for stores that need to seed sessions.
func NewSession(id string) *Session {
	return newSession(id)
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// begin installs a fresh question set and enters the active stage. The mode
// and filter are retained so a retry can re-fetch under identical settings.
func (s *Session) begin(mode Mode, filter domain.QuestionFilter, questions []domain.Question) error {
	if len(questions) == 0 {
		return domain.ErrNoQuestions
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = StageActive
	s.mode = mode
	s.filter = filter
	s.questions = questions
	s.answers = s.answers[:0]
	s.currentIndex = 0
	return nil
}

// settings returns the mode and filter of the last run, for retries.
func (s *Session) settings() (Mode, domain.QuestionFilter) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode, s.filter
}

// SelectAnswer grades the given option against the current question. Calling
// it again for an already-answered question is a no-op that returns the
// recorded answer; a submitted answer can never be changed.
func (s *Session) SelectAnswer(optionIndex int) (domain.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageActive {
		return domain.Answer{}, domain.ErrSessionNotActive
	}
	question := s.questions[s.currentIndex]
	for _, a := range s.answers {
		if a.QuestionID == question.ID {
			return a, nil
		}
	}
	answer := domain.Answer{
		QuestionID: question.ID,
		Selected:   optionIndex,
		Correct:    optionIndex == question.CorrectOption,
	}
	s.answers = append(s.answers, answer)
	return answer, nil
}

// Advance moves to the next question, or to results when the current question
// was the last one.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageActive {
		return domain.ErrSessionNotActive
	}
	if s.currentIndex+1 < len(s.questions) {
		s.currentIndex++
		return nil
	}
	s.stage = StageResults
	return nil
}

// Reset clears the run and returns to setup. Valid from any stage.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = StageSetup
	s.questions = nil
	s.answers = nil
	s.currentIndex = 0
}

// SessionView is a copy-safe snapshot of a session.
type SessionView struct {
	SessionID     string            `json:"sessionId"`
	Stage         Stage             `json:"stage"`
	Mode          Mode              `json:"mode,omitempty"`
	Category      string            `json:"category,omitempty"`
	Difficulty    string            `json:"difficulty,omitempty"`
	Questions     []domain.Question `json:"questions,omitempty"`
	CurrentIndex  int               `json:"currentIndex"`
	Answers       []domain.Answer   `json:"answers"`
	Total         int               `json:"total"`
	Score         int               `json:"score"`
	Progress      int               `json:"progress"`
	LongestStreak int               `json:"longestStreak"`
}

// Snapshot derives the observable state: progress, score, and longest streak
// are computed, never stored.
func (s *Session) Snapshot() SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := SessionView{
		SessionID:     s.id,
		Stage:         s.stage,
		Mode:          s.mode,
		Category:      s.filter.Category,
		Difficulty:    s.filter.Difficulty,
		Questions:     append([]domain.Question(nil), s.questions...),
		CurrentIndex:  s.currentIndex,
		Answers:       append([]domain.Answer{}, s.answers...),
		Total:         len(s.questions),
		Score:         countCorrect(s.answers),
		LongestStreak: longestStreak(s.answers),
	}
	if total := len(s.questions); total > 0 {
		view.Progress = int(math.Round(float64(s.currentIndex+1) / float64(total) * 100))
	}
	return view
}

func countCorrect(answers []domain.Answer) int {
	n := 0
	for _, a := range answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// longestStreak is the longest run of consecutive correct answers in
// insertion order; any incorrect answer resets the run.
func longestStreak(answers []domain.Answer) int {
	best, run := 0, 0
	for _, a := range answers {
		if a.Correct {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}
