// Package view tracks the load state of a page's data. Every fetch takes a
// ticket; only the holder of the latest ticket may settle the state, so a
// slow response never overwrites a newer one.
package view

import (
	"context"
	"sync"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "error"
)

// Ticket identifies one fetch generation.
type Ticket uint64

type State[T any] struct {
	mu     sync.Mutex
	gen    Ticket
	status Status
	data   T
	err    error
}

func NewState[T any]() *State[T] {
	return &State[T]{status: StatusLoading}
}

// Begin starts a new fetch generation and moves the state back to loading.
// Tickets from earlier generations become stale.
func (s *State[T]) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.status = StatusLoading
	s.err = nil
	return s.gen
}

// Resolve stores data if t is still current and reports whether it was applied.
func (s *State[T]) Resolve(t Ticket, data T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t != s.gen {
		return false
	}
	s.status = StatusReady
	s.data = data
	s.err = nil
	return true
}

// Fail records err if t is still current and reports whether it was applied.
func (s *State[T]) Fail(t Ticket, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t != s.gen {
		return false
	}
	s.status = StatusFailed
	s.err = err
	return true
}

func (s *State[T]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Data returns the last resolved data, which stays available while a newer
// fetch is loading.
func (s *State[T]) Data() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *State[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Load runs fetch under a fresh ticket and settles the state with its result.
// It returns the fetch error, if any, whether or not it was applied.
func (s *State[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) error {
	t := s.Begin()
	data, err := fetch(ctx)
	if err != nil {
		s.Fail(t, err)
		return err
	}
	s.Resolve(t, data)
	return nil
}
