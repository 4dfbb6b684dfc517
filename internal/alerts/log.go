// Package alerts holds the expiry-alert log and the batch scanner that
// feeds it.
package alerts

import (
	"sync"
	"time"

	"domainsight/internal/domain"
)

// Key identifies a unique alert instance: a domain first crossing the
// alert threshold at a given days-until-expiry count.
type Key struct {
	DomainName      string
	DaysUntilExpiry int
}

// Log is the in-memory, append-only alert history.
//
// Insert-if-absent is a single lock-guarded operation so concurrent
// scans cannot race duplicate alerts for the same key. The log grows
// unbounded; callers read it through capped tail views. It sits behind
// this type (rather than a bare slice) so a bounded ring or an
// external store can replace it without touching call sites.
type Log struct {
	mu      sync.RWMutex
	entries []domain.Alert
	seen    map[Key]struct{}
}

// NewLog creates an empty alert log.
func NewLog() *Log {
	return &Log{
		seen: make(map[Key]struct{}),
	}
}

// Insert appends the alert unless its key has been seen before.
// It reports whether the alert was inserted.
func (l *Log) Insert(alert domain.Alert) bool {
	key := Key{DomainName: alert.DomainName, DaysUntilExpiry: alert.DaysUntilExpiry}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, dup := l.seen[key]; dup {
		return false
	}
	l.seen[key] = struct{}{}
	l.entries = append(l.entries, alert)
	return true
}

// Seen reports whether an alert with this key already exists.
func (l *Log) Seen(key Key) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.seen[key]
	return ok
}

// TailN returns up to n most recent alerts, oldest first.
func (l *Log) TailN(n int) []domain.Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	tail := make([]domain.Alert, len(l.entries)-start)
	copy(tail, l.entries[start:])
	return tail
}

// Since returns alerts created at or after t, oldest first.
func (l *Log) Since(t time.Time) []domain.Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()

	recent := make([]domain.Alert, 0)
	for _, alert := range l.entries {
		if !alert.Timestamp.Before(t) {
			recent = append(recent, alert)
		}
	}
	return recent
}

// Len returns the total number of alerts ever recorded.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}
