package storage

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"checkinmonitor/internal/models"
)

var (
	// ErrEmptyMonitor is returned when a check-in does not name its monitor.
	ErrEmptyMonitor = errors.New("check-in must name a monitor")
	// ErrOutsideRetention is returned when a full history would evict the check-in itself.
	ErrOutsideRetention = errors.New("check-in is older than the retained history")
)

// CheckInStorage keeps a bounded, in-memory check-in history per monitor.
type CheckInStorage struct {
	mu      sync.RWMutex
	limit   int
	seq     uint64
	now     func() time.Time
	history map[string][]models.CheckIn
}

// NewCheckInStorage creates a storage keeping at most limit check-ins per monitor.
func NewCheckInStorage(limit int) *CheckInStorage {
	if limit <= 0 {
		limit = 1000
	}
	return &CheckInStorage{
		limit:   limit,
		now:     time.Now,
		history: make(map[string][]models.CheckIn),
	}
}

// Append records a check-in, filling in its ID and timestamp when unset, and returns the
// stored value. Entries are kept in timestamp order. When the monitor's history is full,
// a check-in older than every retained entry is rejected with ErrOutsideRetention.
func (s *CheckInStorage) Append(entry models.CheckIn) (models.CheckIn, error) {
	entry.Monitor = strings.TrimSpace(entry.Monitor)
	if entry.Monitor == "" {
		return models.CheckIn{}, ErrEmptyMonitor
	}
	if !entry.Status.Valid() {
		return models.CheckIn{}, fmt.Errorf("check-in for %s: invalid status %d", entry.Monitor, int(entry.Status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.history[entry.Monitor]
	if len(existing) >= s.limit && !entry.Timestamp.IsZero() && entry.Timestamp.Before(existing[0].Timestamp) {
		return models.CheckIn{}, fmt.Errorf("check-in for %s at %s: %w",
			entry.Monitor, entry.Timestamp.Format(time.RFC3339), ErrOutsideRetention)
	}

	s.seq++
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("%s-%d", entry.Monitor, s.seq)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	entries := append(existing, entry)
	if n := len(entries); n > 1 && entries[n-1].Timestamp.Before(entries[n-2].Timestamp) {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		})
	}
	if len(entries) > s.limit {
		entries = append([]models.CheckIn(nil), entries[len(entries)-s.limit:]...)
	}
	s.history[entry.Monitor] = entries
	return entry, nil
}

// Latest returns the most recent check-in of monitor if it exists.
func (s *CheckInStorage) Latest(monitor string) (models.CheckIn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.history[monitor]
	if len(entries) == 0 {
		return models.CheckIn{}, false
	}
	return entries[len(entries)-1], true
}

// History returns a copy of monitor's check-ins, oldest first.
func (s *CheckInStorage) History(monitor string) []models.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.history[monitor]
	copied := make([]models.CheckIn, len(entries))
	copy(copied, entries)
	return copied
}

// HistoryBetween returns monitor's check-ins with start <= timestamp < end.
func (s *CheckInStorage) HistoryBetween(monitor string, start, end time.Time) []models.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.history[monitor]
	i := sort.Search(len(entries), func(i int) bool { return !entries[i].Timestamp.Before(start) })
	j := sort.Search(len(entries), func(j int) bool { return !entries[j].Timestamp.Before(end) })
	if i >= j {
		return nil
	}
	copied := make([]models.CheckIn, j-i)
	copy(copied, entries[i:j])
	return copied
}

// Monitors lists monitors that have check-ins, sorted by name.
func (s *CheckInStorage) Monitors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.history))
	for name := range s.history {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
