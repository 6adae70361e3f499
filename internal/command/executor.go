package command

import (
	"fmt"
	"sync"
)

// Executor serializes work onto a single worker goroutine. Hosting editors own
// their document state on one UI-affine thread; running every document access
// through the executor gives the same guarantee without any shared mutable
// state between invocations.
type Executor struct {
	tasks  chan func()
	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewExecutor starts the worker goroutine.
func NewExecutor() *Executor {
	e := &Executor{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
	go e.run()
	return e
}

func (e *Executor) run() {
	for fn := range e.tasks {
		fn()
	}
	close(e.done)
}

// Do schedules fn onto the worker and waits for it to complete. It returns an
// error when the executor has been closed.
func (e *Executor) Do(fn func()) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return fmt.Errorf("executor is closed")
	}
	finished := make(chan struct{})
	e.tasks <- func() {
		defer close(finished)
		fn()
	}
	e.mu.Unlock()
	<-finished
	return nil
}

// Close stops the worker after any in-flight task completes. Close is
// idempotent.
func (e *Executor) Close() {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.tasks)
	}
	e.mu.Unlock()
	<-e.done
}
