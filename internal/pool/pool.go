// Package pool provides a typed object pool for go-args parse sessions.
// Used by args.New / (*Args).Release to recycle per-parse lookup tables.
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool is a type-safe wrapper over sync.Pool with an optional reset hook
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T) // called on every Get before the object is handed out
	created atomic.Int64
	puts    atomic.Int64
}

// NewPool creates a pool that builds new objects with factory
func NewPool[T any](factory func() *T) *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any {
		p.created.Add(1)
		return factory()
	}
	return p
}

// NewPoolWithReset creates a pool whose objects are reset before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool. Nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.puts.Add(1)
	p.pool.Put(obj)
}

// Stats returns how many objects the factory has built and how many were returned
func (p *Pool[T]) Stats() (created, returned int64) {
	return p.created.Load(), p.puts.Load()
}
