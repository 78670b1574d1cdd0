// Package autosave provides fixed-delay debounce timers for persistence
// units. Each unit is addressed by key; scheduling a unit again before its
// timer fires coalesces the edits into one save. Stop cancels every pending
// timer, so a shutting-down owner never leaks a firing callback.
package autosave

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler owns one debounce timer per persistence unit key
type Scheduler struct {
	delay  time.Duration
	logger *zap.Logger

	mu      sync.Mutex
	entries map[string]*entry
	stopped bool
}

type entry struct {
	timer *time.Timer
	fn    func()
}

// NewScheduler creates a scheduler with a fixed debounce delay
func NewScheduler(delay time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		delay:   delay,
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// Schedule queues fn to run after the debounce delay. A pending timer for
// the same key is reset and its callback replaced, coalescing rapid edits
// into one save.
func (s *Scheduler) Schedule(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if e, ok := s.entries[key]; ok {
		e.timer.Stop()
		e.fn = fn
		e.timer.Reset(s.delay)
		return
	}

	e := &entry{fn: fn}
	e.timer = time.AfterFunc(s.delay, func() {
		s.fire(key)
	})
	s.entries[key] = e
}

func (s *Scheduler) fire(key string) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	s.mu.Unlock()

	if ok && e.fn != nil {
		e.fn()
	}
}

// Flush runs a pending save for the key immediately, if any
func (s *Scheduler) Flush(key string) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		e.timer.Stop()
		delete(s.entries, key)
	}
	s.mu.Unlock()

	if ok && e.fn != nil {
		e.fn()
	}
}

// Cancel drops a pending save for the key without running it
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		e.timer.Stop()
		delete(s.entries, key)
	}
}

// Pending reports whether a save is queued for the key
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

// Stop cancels all pending timers. The scheduler accepts no further work.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, key)
	}
	s.stopped = true
	if s.logger != nil {
		s.logger.Info("Autosave scheduler stopped")
	}
}
