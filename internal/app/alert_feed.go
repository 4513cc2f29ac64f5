package app

import (
	"sync"

	"cyberaware-service/internal/domain"
)

// Alert feed event kinds.
const (
	EventAlert       = "alert"
	EventReportTrend = "reportTrend"
)

// AlertEvent is one message on the live alert feed.
type AlertEvent struct {
	Kind  string              `json:"kind"`
	Alert *domain.ScamAlert   `json:"alert,omitempty"`
	Trend *domain.TrendUpdate `json:"trend,omitempty"`
}

// AlertFeed fans alert events out to subscribers. Slow subscribers have
// their oldest pending event dropped instead of blocking the publisher.
type AlertFeed struct {
	mu          sync.Mutex
	subscribers map[chan AlertEvent]struct{}
}

func NewAlertFeed() *AlertFeed {
	return &AlertFeed{subscribers: make(map[chan AlertEvent]struct{})}
}

// Subscribe returns a channel that receives feed events. The caller must
// invoke the returned cancel function to avoid leaks.
func (f *AlertFeed) Subscribe() (<-chan AlertEvent, func()) {
	ch := make(chan AlertEvent, 8)

	f.mu.Lock()
	f.subscribers[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		if _, ok := f.subscribers[ch]; ok {
			delete(f.subscribers, ch)
			close(ch)
		}
		f.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber.
func (f *AlertFeed) Publish(event AlertEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subscribers {
		select {
		case ch <- event:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- event
		}
	}
}
