package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReportID builds a human-quotable report identifier. Stores call this at
// insert time so every backend mints IDs the same way.
func NewReportID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("REPORT-%d-%s", now.UnixMilli(), suffix)
}

// MonthKey is the ByMonth bucket for a submission timestamp.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
