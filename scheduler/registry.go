package scheduler

import (
	"strings"
	"sync"
)

// JobRegistry tracks which symbols have an active price check job.
// It is the single source of truth for "does a job exist for this symbol";
// the check-and-set is atomic so two concurrent start requests for the same
// symbol can never both be admitted.
type JobRegistry struct {
	mu   sync.Mutex
	jobs map[string]struct{}
}

// NewJobRegistry creates an empty job registry
func NewJobRegistry() *JobRegistry {
	return &JobRegistry{
		jobs: make(map[string]struct{}),
	}
}

// TryRegister marks a job as existing for the symbol and reports whether it
// was admitted. Symbols are matched case-insensitively.
func (r *JobRegistry) TryRegister(symbol string) bool {
	key := canonical(symbol)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[key]; exists {
		return false
	}
	r.jobs[key] = struct{}{}
	return true
}

// Unregister removes the entry for a symbol. Used only when arming the
// schedule failed; per-tick failures never unregister a running job.
func (r *JobRegistry) Unregister(symbol string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, canonical(symbol))
}

// IsRunning reports whether a job exists for the symbol
func (r *JobRegistry) IsRunning(symbol string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.jobs[canonical(symbol)]
	return exists
}

// Count returns the number of registered jobs
func (r *JobRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

func canonical(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
