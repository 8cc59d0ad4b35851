package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Feed is a bounded, append-only log of activity entries. Once full, the oldest
// entries are dropped.
type Feed struct {
	entries []Entry
	limit   int
	mu      sync.RWMutex
}

// NewFeed creates a feed keeping at most limit entries.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 1
	}
	return &Feed{
		entries: make([]Entry, 0, limit),
		limit:   limit,
	}
}

// Record appends a new entry.
func (f *Feed) Record(taskID int, entryType, message string, at time.Time) Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry := Entry{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Type:      entryType,
		Message:   message,
		Timestamp: at,
	}
	if len(f.entries) == f.limit {
		copy(f.entries, f.entries[1:])
		f.entries = f.entries[:len(f.entries)-1]
	}
	f.entries = append(f.entries, entry)
	return entry
}

// Recent returns up to n of the newest entries, oldest first.
// n <= 0 returns every entry.
func (f *Feed) Recent(n int) []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	start := 0
	if n > 0 && n < len(f.entries) {
		start = len(f.entries) - n
	}
	result := make([]Entry, len(f.entries)-start)
	copy(result, f.entries[start:])
	return result
}

// Len returns the number of entries held.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}
