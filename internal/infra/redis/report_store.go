package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"cyberaware-service/internal/domain"
)

const (
	reportKeyPrefix = "report:"
	reportTotalKey  = "reports:total"
	reportTypesKey  = "reports:stats:types"
	reportMonthsKey = "reports:stats:months"
)

// ReportStore persists scam reports as JSON values and keeps aggregate
// counters in hashes so Stats never scans individual reports.
type ReportStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewReportStore(client *redis.Client) *ReportStore {
	return &ReportStore{client: client, now: time.Now}
}

func NewReportStoreWithClock(client *redis.Client, now func() time.Time) *ReportStore {
	return &ReportStore{client: client, now: now}
}

func (s *ReportStore) Insert(ctx context.Context, input domain.ScamReportInput) (domain.ScamReport, error) {
	submittedAt := s.now()
	report := domain.ScamReport{
		ScamReportInput: input,
		ID:              domain.NewReportID(submittedAt),
		SubmittedAt:     submittedAt,
	}

	data, err := json.Marshal(report)
	if err != nil {
		return domain.ScamReport{}, fmt.Errorf("marshal report: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, reportKeyPrefix+report.ID, data, 0)
	pipe.Incr(ctx, reportTotalKey)
	pipe.HIncrBy(ctx, reportTypesKey, report.Type, 1)
	pipe.HIncrBy(ctx, reportMonthsKey, domain.MonthKey(submittedAt), 1)
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.ScamReport{}, fmt.Errorf("store report: %w", err)
	}
	return report, nil
}

func (s *ReportStore) Get(ctx context.Context, id string) (domain.ScamReport, error) {
	data, err := s.client.Get(ctx, reportKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return domain.ScamReport{}, domain.ErrReportNotFound
	}
	if err != nil {
		return domain.ScamReport{}, fmt.Errorf("load report: %w", err)
	}
	var report domain.ScamReport
	if err := json.Unmarshal(data, &report); err != nil {
		return domain.ScamReport{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}

func (s *ReportStore) Stats(ctx context.Context) (domain.ReportStats, error) {
	total, err := s.client.Get(ctx, reportTotalKey).Int()
	if err != nil && err != redis.Nil {
		return domain.ReportStats{}, fmt.Errorf("load report total: %w", err)
	}

	byType, err := decodeCounters(ctx, s.client, reportTypesKey)
	if err != nil {
		return domain.ReportStats{}, err
	}
	byMonth, err := decodeCounters(ctx, s.client, reportMonthsKey)
	if err != nil {
		return domain.ReportStats{}, err
	}

	return domain.ReportStats{Total: total, ByType: byType, ByMonth: byMonth}, nil
}

func decodeCounters(ctx context.Context, client *redis.Client, key string) (map[string]int, error) {
	raw, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("load counters %s: %w", key, err)
	}
	counters := make(map[string]int, len(raw))
	for field, value := range raw {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("counter %s.%s: %w", key, field, err)
		}
		counters[field] = n
	}
	return counters, nil
}
