// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import "sync"

// Synced guards an Array with a read-write mutex so several goroutines
// can share it. Every call holds the lock for the whole callback, so a
// sequence of operations inside one callback is atomic.
type Synced[T any] struct {
	mu sync.RWMutex
	a  *Array[T]
}

// NewSynced wraps a. A nil a starts from an empty array.
// The caller must not use a directly afterwards.
func NewSynced[T any](a *Array[T]) *Synced[T] {
	if a == nil {
		a = New[T]()
	}
	return &Synced[T]{a: a}
}

// Do runs f with exclusive access to the array.
func (s *Synced[T]) Do(f func(a *Array[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.a)
}

// View runs f with shared access. f must not mutate the array.
func (s *Synced[T]) View(f func(a *Array[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f(s.a)
}

// Len returns the current length.
func (s *Synced[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Len()
}

// Snapshot returns a shallow copy taken under the read lock.
func (s *Synced[T]) Snapshot() *Array[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Clone()
}
