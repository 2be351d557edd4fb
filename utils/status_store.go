package utils

import (
	"sync"
	"time"

	"chitoro-backend/hours"
)

// BranchStatus is one entry of the periodic status refresh: the open
// state of a branch as of ComputedAt.
type BranchStatus struct {
	BranchID   int64        `json:"branch_id"`
	BusinessID uint         `json:"business_id"`
	Status     hours.Status `json:"status"`
	ComputedAt time.Time    `json:"computed_at"`
}

// StatusStore holds the latest computed branch statuses in memory.
// The status engine itself is stateless; this store only caches its
// most recent output so the snapshot endpoint never touches the
// database.
type StatusStore struct {
	statuses map[int64]BranchStatus
	mu       sync.RWMutex
}

// Statuses is the global status store instance.
var Statuses = NewStatusStore()

func NewStatusStore() *StatusStore {
	return &StatusStore{
		statuses: make(map[int64]BranchStatus),
	}
}

// Set records the latest status for a branch.
func (ss *StatusStore) Set(status BranchStatus) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.statuses[status.BranchID] = status
}

// Get retrieves the latest status for a branch.
func (ss *StatusStore) Get(branchID int64) (BranchStatus, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	status, exists := ss.statuses[branchID]
	return status, exists
}

// Snapshot returns a copy of every stored status.
func (ss *StatusStore) Snapshot() []BranchStatus {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	out := make([]BranchStatus, 0, len(ss.statuses))
	for _, status := range ss.statuses {
		out = append(out, status)
	}
	return out
}

// CleanupStale removes entries not refreshed within maxAge, e.g. for
// branches edited or removed since the last refresh pass.
func (ss *StatusStore) CleanupStale(maxAge time.Duration) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	for id, status := range ss.statuses {
		if status.ComputedAt.Before(cutoff) {
			delete(ss.statuses, id)
		}
	}
}
