package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"cyberaware-service/internal/domain"
)

// BankLoader fetches the question bank from a backing store (e.g. Postgres).
type BankLoader interface {
	LoadBank(ctx context.Context) ([]domain.Question, error)
}

// QuestionRepository caches the question bank with TTL to avoid repeated
// loader hits, and serves filtered, shuffled selections from it.
type QuestionRepository struct {
	loader BankLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu        sync.Mutex
	rnd       *rand.Rand
	bank      []domain.Question
	expiresAt time.Time
}

func NewQuestionRepository(loader BankLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	bank, err := r.loadBank(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.SelectQuestions(bank, filter, r.rnd), nil
}

func (r *QuestionRepository) GetQuestion(ctx context.Context, id string) (domain.Question, error) {
	bank, err := r.loadBank(ctx)
	if err != nil {
		return domain.Question{}, err
	}
	for _, q := range bank {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.Question{}, domain.ErrQuestionNotFound
}

func (r *QuestionRepository) Categories(ctx context.Context) ([]string, error) {
	bank, err := r.loadBank(ctx)
	if err != nil {
		return nil, err
	}
	return domain.QuestionCategories(bank), nil
}

func (r *QuestionRepository) loadBank(ctx context.Context) ([]domain.Question, error) {
	now := r.clock()

	r.mu.Lock()
	if r.bank != nil && r.expiresAt.After(now) {
		bank := r.bank
		r.mu.Unlock()
		return bank, nil
	}
	r.mu.Unlock()

	result, err, _ := r.sf.Do("bank", func() (interface{}, error) {
		now := r.clock()
		r.mu.Lock()
		if r.bank != nil && r.expiresAt.After(now) {
			bank := r.bank
			r.mu.Unlock()
			return bank, nil
		}
		r.mu.Unlock()

		bank, err := r.loader.LoadBank(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.bank = bank
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return bank, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticBankLoader is a loader backed by an in-memory slice (useful for
// tests/demos and the default server wiring).
type StaticBankLoader struct {
	questions []domain.Question
}

func NewStaticBankLoader(questions []domain.Question) *StaticBankLoader {
	return &StaticBankLoader{questions: questions}
}

func (l *StaticBankLoader) LoadBank(_ context.Context) ([]domain.Question, error) {
	return l.questions, nil
}
