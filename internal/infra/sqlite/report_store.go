package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"cyberaware-service/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
    id TEXT PRIMARY KEY,
    scam_type TEXT NOT NULL,
    description TEXT NOT NULL,
    incident_date TEXT NOT NULL,
    amount REAL,
    url TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone_number TEXT NOT NULL DEFAULT '',
    reported_to TEXT NOT NULL DEFAULT '',
    submitted_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_scam_type ON reports(scam_type);
`

// ReportStore is a file-backed archive of scam reports.
type ReportStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewReportStore(path string) (*ReportStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &ReportStore{db: db, now: time.Now}, nil
}

// SetClock overrides the timestamp source. Tests only.
func (s *ReportStore) SetClock(now func() time.Time) { s.now = now }

func (s *ReportStore) Close() error { return s.db.Close() }

func (s *ReportStore) Insert(ctx context.Context, input domain.ScamReportInput) (domain.ScamReport, error) {
	submittedAt := s.now()
	report := domain.ScamReport{
		ScamReportInput: input,
		ID:              domain.NewReportID(submittedAt),
		SubmittedAt:     submittedAt,
	}

	var amount sql.NullFloat64
	if input.Amount != nil {
		amount = sql.NullFloat64{Float64: *input.Amount, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, scam_type, description, incident_date, amount, url, email, phone_number, reported_to, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID, input.Type, input.Description, input.IncidentDate, amount,
		input.URL, input.Email, input.PhoneNumber, input.ReportedTo, submittedAt.UTC(),
	)
	if err != nil {
		return domain.ScamReport{}, fmt.Errorf("insert report: %w", err)
	}
	return report, nil
}

func (s *ReportStore) Get(ctx context.Context, id string) (domain.ScamReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, scam_type, description, incident_date, amount, url, email, phone_number, reported_to, submitted_at
		FROM reports WHERE id = ?`, id)

	var (
		report domain.ScamReport
		amount sql.NullFloat64
	)
	err := row.Scan(
		&report.ID, &report.Type, &report.Description, &report.IncidentDate, &amount,
		&report.URL, &report.Email, &report.PhoneNumber, &report.ReportedTo, &report.SubmittedAt,
	)
	if err == sql.ErrNoRows {
		return domain.ScamReport{}, domain.ErrReportNotFound
	}
	if err != nil {
		return domain.ScamReport{}, fmt.Errorf("load report: %w", err)
	}
	if amount.Valid {
		v := amount.Float64
		report.Amount = &v
	}
	return report, nil
}

func (s *ReportStore) Stats(ctx context.Context) (domain.ReportStats, error) {
	stats := domain.ReportStats{
		ByType:  map[string]int{},
		ByMonth: map[string]int{},
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&stats.Total); err != nil {
		return domain.ReportStats{}, fmt.Errorf("count reports: %w", err)
	}

	if err := s.scanCounters(ctx, `SELECT scam_type, COUNT(*) FROM reports GROUP BY scam_type`, stats.ByType); err != nil {
		return domain.ReportStats{}, err
	}
	if err := s.scanCounters(ctx, `SELECT strftime('%Y-%m', submitted_at), COUNT(*) FROM reports GROUP BY 1`, stats.ByMonth); err != nil {
		return domain.ReportStats{}, err
	}
	return stats, nil
}

func (s *ReportStore) scanCounters(ctx context.Context, query string, into map[string]int) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load counters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("scan counter: %w", err)
		}
		into[key] = count
	}
	return rows.Err()
}
