package service

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
)

const (
	defaultHistorySessions   = 10000
	defaultHistoryTTL        = 24 * time.Hour
	defaultHistoryMaxEntries = 100
)

// HistoryStore keeps the calculation history of checkout sessions.
type HistoryStore interface {
	// Record appends a calculation to a session's history.
	Record(sessionID string, entry model.HistoryEntry)
	// List returns a session's history, oldest first.
	List(sessionID string) []model.HistoryEntry
	// Clear drops a session's history and reports whether it had any.
	Clear(sessionID string) bool
	// Sessions returns the number of sessions with history.
	Sessions() int
}

// HistoryConfig holds configuration for the history store.
type HistoryConfig struct {
	// Sessions is the maximum number of sessions kept; least recently used go first.
	Sessions int
	// TTL is how long a session's history lives after its last calculation.
	TTL time.Duration
	// MaxEntries caps the entries per session; older entries are dropped.
	MaxEntries int
}

// HistoryService implements HistoryStore in memory with an expiring LRU.
type HistoryService struct {
	entries    *expirable.LRU[string, []model.HistoryEntry]
	maxEntries int
	mu         sync.Mutex
}

// NewHistoryService creates an in-memory history store. Zero config values
// fall back to defaults.
func NewHistoryService(cfg HistoryConfig) *HistoryService {
	if cfg.Sessions <= 0 {
		cfg.Sessions = defaultHistorySessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultHistoryTTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = defaultHistoryMaxEntries
	}

	return &HistoryService{
		entries:    expirable.NewLRU[string, []model.HistoryEntry](cfg.Sessions, nil, cfg.TTL),
		maxEntries: cfg.MaxEntries,
	}
}

// Record appends entry to the session's history and refreshes its TTL.
func (s *HistoryService) Record(sessionID string, entry model.HistoryEntry) {
	if sessionID == "" {
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.entries.Peek(sessionID)
	start := 0
	if len(existing)+1 > s.maxEntries {
		start = len(existing) + 1 - s.maxEntries
	}
	updated := make([]model.HistoryEntry, 0, len(existing)-start+1)
	updated = append(updated, existing[start:]...)
	updated = append(updated, entry)

	s.entries.Add(sessionID, updated)
	metrics.SetHistorySessions(s.entries.Len())
}

// List returns a copy of the session's history.
func (s *HistoryService) List(sessionID string) []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries.Get(sessionID)
	if !ok {
		return []model.HistoryEntry{}
	}
	out := make([]model.HistoryEntry, len(existing))
	copy(out, existing)
	return out
}

// Clear removes the session's history.
func (s *HistoryService) Clear(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.entries.Remove(sessionID)
	metrics.SetHistorySessions(s.entries.Len())
	return removed
}

// Sessions returns the number of live sessions.
func (s *HistoryService) Sessions() int {
	n := s.entries.Len()
	metrics.SetHistorySessions(n)
	return n
}
