package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"cyberaware-service/internal/domain"
)

// BankLoader fetches the question bank from a backing store (e.g. Postgres).
type BankLoader interface {
	LoadBank(ctx context.Context) ([]domain.Question, error)
}

const bankKey = "quiz:bank"

// QuestionRepository caches the serialized question bank in Redis and falls
// back to a loader on cache miss. Selections (filter/shuffle/limit) are
// computed per call; only the bank itself is shared.
type QuestionRepository struct {
	client *redis.Client
	loader BankLoader
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuestionRepository(client *redis.Client, loader BankLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
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
	if bank, ok := r.cachedBank(ctx); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if bank, ok := r.cachedBank(ctx); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadBank(ctx)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(bank); err == nil {
			// best-effort cache fill
			_ = r.client.Set(ctx, bankKey, data, r.ttlWithJitter()).Err()
		}
		return bank, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *QuestionRepository) cachedBank(ctx context.Context) ([]domain.Question, bool) {
	data, err := r.client.Get(ctx, bankKey).Bytes()
	if err != nil {
		return nil, false
	}
	var bank []domain.Question
	if err := json.Unmarshal(data, &bank); err != nil || len(bank) == 0 {
		return nil, false
	}
	return bank, true
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
