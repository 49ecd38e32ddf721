package web

import (
	"sync"
	"time"

	"github.com/JonMunkholm/GradeSync/internal/core"
	"github.com/google/uuid"
)

// mergeResult is one completed merge kept in memory until downloaded or
// expired. Nothing is persisted; restarting the server clears results.
type mergeResult struct {
	Output  []byte
	Report  *core.MergeReport
	Created time.Time
}

// resultStore holds completed merge results keyed by merge ID, evicting
// entries older than the TTL.
type resultStore struct {
	mu      sync.Mutex
	results map[string]*mergeResult
	ttl     time.Duration
	stop    chan struct{}
}

func newResultStore(ttl, cleanupInterval time.Duration) *resultStore {
	rs := &resultStore{
		results: make(map[string]*mergeResult),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go rs.janitor(cleanupInterval)
	return rs
}

// Put stores a result and returns its merge ID.
func (rs *resultStore) Put(output []byte, report *core.MergeReport) string {
	id := uuid.NewString()

	rs.mu.Lock()
	rs.results[id] = &mergeResult{
		Output:  output,
		Report:  report,
		Created: time.Now(),
	}
	rs.mu.Unlock()

	return id
}

// Get returns the result for id, or nil if unknown or expired.
func (rs *resultStore) Get(id string) *mergeResult {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	res, ok := rs.results[id]
	if !ok {
		return nil
	}
	if time.Since(res.Created) > rs.ttl {
		delete(rs.results, id)
		return nil
	}
	return res
}

// Stop terminates the janitor goroutine.
func (rs *resultStore) Stop() {
	close(rs.stop)
}

func (rs *resultStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rs.stop:
			return
		case <-ticker.C:
			rs.mu.Lock()
			for id, res := range rs.results {
				if time.Since(res.Created) > rs.ttl {
					delete(rs.results, id)
				}
			}
			rs.mu.Unlock()
		}
	}
}
