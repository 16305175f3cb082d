// Package singleton provides a lazily constructed, process-wide value.
package singleton

import (
	"sync"
	"sync/atomic"
)

// Lazy holds a value built on the first call to Get. Concurrent first calls
// construct it exactly once.
type Lazy[T any] struct {
	once        sync.Once
	constructor func() T
	instance    T
	initialized atomic.Bool
}

func New[T any](constructor func() T) *Lazy[T] {
	return &Lazy[T]{constructor: constructor}
}

func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.instance = l.constructor()
		l.initialized.Store(true)
	})
	return l.instance
}

// Initialized reports whether Get has completed construction.
func (l *Lazy[T]) Initialized() bool {
	return l.initialized.Load()
}
