// Package worker runs independent jobs on a fixed number of goroutines and
// hands back their results as they finish.
package worker

import (
	"sync"
	"sync/atomic"
)

// Result is the output of the job submitted with the same index.
type Result[R any] struct {
	Index int
	Value R
}

type job[T any] struct {
	index int
	input T
}

type settings struct {
	workers int
	buffer  int
}

// Option configures a Pool.
type Option func(*settings)

// WithWorkers sets the number of goroutines. Values below one are ignored.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the job and result queues. Values
// below one are ignored.
func WithBufferSize(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.buffer = n
		}
	}
}

// Pool applies one function to every submitted input. Inputs must not be
// shared between jobs: a job owns its input while it runs.
type Pool[T, R any] struct {
	fn      func(T) R
	workers int
	buffer  int
	jobs    chan job[T]
	results chan Result[R]
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewPool returns a pool that calls fn for each job. It defaults to one
// worker and queues of ten.
func NewPool[T, R any](fn func(T) R, opts ...Option) *Pool[T, R] {
	s := settings{workers: 1, buffer: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T, R]{
		fn:      fn,
		workers: s.workers,
		buffer:  s.buffer,
		jobs:    make(chan job[T], s.buffer),
		results: make(chan Result[R], s.buffer),
	}
}

// Start launches the workers.
func (p *Pool[T, R]) Start() {
	p.wg.Add(p.workers)
	for range p.workers {
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				if p.stopped.Load() {
					continue
				}
				p.results <- Result[R]{Index: j.index, Value: p.fn(j.input)}
			}
		}()
	}
}

// Submit queues input under index. It blocks while the queue is full.
func (p *Pool[T, R]) Submit(index int, input T) {
	p.jobs <- job[T]{index: index, input: input}
}

// Stop makes the workers discard queued jobs without running them.
func (p *Pool[T, R]) Stop() { p.stopped.Store(true) }

// IsStopped reports whether Stop has been called.
func (p *Pool[T, R]) IsStopped() bool { return p.stopped.Load() }

// Close ends submission, waits for the workers and then closes the result
// channel.
func (p *Pool[T, R]) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool[T, R]) Results() <-chan Result[R] { return p.results }

// NumWorkers returns the number of workers.
func (p *Pool[T, R]) NumWorkers() int { return p.workers }

// Map runs fn over inputs on the given number of workers and returns the
// outputs in input order.
func Map[T, R any](inputs []T, workers int, fn func(T) R) []R {
	pool := NewPool(fn, WithWorkers(workers), WithBufferSize(len(inputs)+1))
	pool.Start()
	go func() {
		for i, in := range inputs {
			pool.Submit(i, in)
		}
		pool.Close()
	}()

	out := make([]R, len(inputs))
	for r := range pool.Results() {
		out[r.Index] = r.Value
	}
	return out
}
