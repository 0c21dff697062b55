// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"errors"
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
)

// ErrAlreadyInitialized is returned by Stage.Init when called more
// than once on the same Stage.
var ErrAlreadyInitialized = errors.New("pipeline: stage already initialized")

// Forwarder is the downstream stage's PlaceWork, held as an opaque
// function reference by the upstream stage. It takes a borrowed
// string — the callee copies what it needs before returning.
type Forwarder func(s string) error

// Stage is one processing element: a queue, a dedicated worker
// goroutine, and a Transformer. A Stage without a forwarder is the
// terminal stage in its pipeline; records it produces are discarded,
// the transform's side effects being the only sink.
//
// Construct with NewStage, then Init before any other operation.
type Stage struct {
	name      string
	transform Transformer

	initialized atomix.Bool // read on the PlaceWork/Attach hot path without the queue's mutex
	closed      atomix.Bool
	processed   atomix.Int64 // diagnostic: non-sentinel records this stage has transformed

	mu        sync.Mutex // guards forward/attached; Attach is called once, at setup, never hot-path
	forward   Forwarder
	attached  bool
	lastErr   error

	queue *StringQueue
	done  chan struct{} // closed when the worker goroutine returns
}

// NewStage creates a stage bound to the given transform, not yet
// initialized. name is a diagnostic identifier (GetName).
func NewStage(name string, transform Transformer) *Stage {
	return &Stage{name: name, transform: transform}
}

// GetName returns the stage's diagnostic identifier.
func (s *Stage) GetName() string { return s.name }

// Init allocates the stage's queue and spawns its worker goroutine.
// Fails if called more than once, or if capacity is invalid.
func (s *Stage) Init(capacity int) error {
	if s.initialized.Load() {
		return ErrAlreadyInitialized
	}
	q, err := NewStringQueue(capacity)
	if err != nil {
		return err
	}
	s.queue = q
	s.done = make(chan struct{})
	s.initialized.Store(true)
	go s.run()
	return nil
}

// Attach sets the downstream forwarder. Meaningful at most once: the
// orchestrator guarantees this is called before any record has been
// enqueued downstream, by attaching every stage before feeding input.
func (s *Stage) Attach(f Forwarder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		return ErrAlreadyAttached
	}
	s.forward = f
	s.attached = true
	return nil
}

// PlaceWork enqueues a copy of s onto this stage's queue, blocking if
// the queue is full. Returns ErrNotInitialized if Init has not
// succeeded, or the queue's error verbatim otherwise.
func (s *Stage) PlaceWork(str string) error {
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	return s.queue.Enqueue(str)
}

// WaitFinished blocks until this stage's worker loop has exited,
// either via the terminal marker or sentinel propagation.
func (s *Stage) WaitFinished() error {
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	s.queue.WaitDrained()
	return nil
}

// Close joins the worker goroutine and releases the queue. Must be
// called after WaitFinished has returned on this stage and on every
// upstream stage. Calling Close before a successful Init returns
// ErrNotInitialized and performs no destructive action (see
// DESIGN.md's Open Questions). Idempotent after the first call.
func (s *Stage) Close() error {
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	if s.closed.Load() {
		return nil
	}
	<-s.done
	s.queue.Close()
	s.closed.Store(true)
	return nil
}

// LastError returns the most recent error this stage's worker
// recorded while forwarding a record downstream, or nil. Diagnostic
// only — the worker never aborts its own loop because of a forward
// error; it logs it here and continues draining.
func (s *Stage) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Processed returns the number of non-sentinel records this stage has
// transformed so far. Diagnostic only.
func (s *Stage) Processed() int64 {
	return s.processed.Load()
}

func (s *Stage) setLastErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

func (s *Stage) forwarder() Forwarder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forward
}

// run is the worker loop described in spec.md §4.3. It owns this
// stage's dedicated goroutine for the stage's entire lifetime.
func (s *Stage) run() {
	defer close(s.done)
	defer s.queue.signalDrained()

	for {
		record, ok := s.queue.Dequeue()
		if !ok {
			return
		}
		if record == End {
			if fwd := s.forwarder(); fwd != nil {
				if err := fwd(record); err != nil {
					s.setLastErr(fmt.Errorf("stage %q: forwarding sentinel: %w", s.name, err))
				}
			}
			return
		}

		out, forward := s.transform.Transform(record)
		s.processed.Add(1)
		if forward {
			if fwd := s.forwarder(); fwd != nil {
				if err := fwd(out); err != nil {
					s.setLastErr(fmt.Errorf("stage %q: forwarding record: %w", s.name, err))
				}
			}
		}
	}
}
