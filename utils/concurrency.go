package utils

import (
	"sync"
	"time"
)

// WorkerPool manages a pool of goroutines with rate limiting. The CLI uses it
// to preview several files at once while keeping each pipeline run isolated.
type WorkerPool struct {
	maxWorkers  int
	rateLimitMs int
	semaphore   chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
	lastStart   time.Time
}

// NewWorkerPool creates a WorkerPool with the given concurrency and rate limit.
func NewWorkerPool(maxWorkers, rateLimitMs int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		maxWorkers:  maxWorkers,
		rateLimitMs: rateLimitMs,
		semaphore:   make(chan struct{}, maxWorkers),
		lastStart:   time.Now(),
	}
}

// Submit enqueues a job for execution in the pool.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()

		wp.enforceRateLimit()
		job()
	}()
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) enforceRateLimit() {
	if wp.rateLimitMs <= 0 {
		return
	}
	wp.mu.Lock()
	defer wp.mu.Unlock()

	minInterval := time.Duration(wp.rateLimitMs) * time.Millisecond
	elapsed := time.Since(wp.lastStart)
	if elapsed < minInterval {
		time.Sleep(minInterval - elapsed)
	}
	wp.lastStart = time.Now()
}

// SlugSet is a thread-safe set for tracking claimed property slugs.
type SlugSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewSlugSet creates an empty SlugSet.
func NewSlugSet() *SlugSet {
	return &SlugSet{seen: make(map[string]struct{})}
}

// Add returns true if the slug was newly claimed, false if already present.
func (s *SlugSet) Add(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[slug]; exists {
		return false
	}
	s.seen[slug] = struct{}{}
	return true
}

// Contains returns true if the slug has already been claimed.
func (s *SlugSet) Contains(slug string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[slug]
	return exists
}

// Size returns the number of unique slugs tracked.
func (s *SlugSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}
