// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import "sync"

// Latch is a sticky, manual-reset, broadcast-wake synchronization
// primitive. Unlike an auto-reset event, a Latch remembers a Set that
// happened before anyone called Wait — this is what lets the sentinel
// handshake race safely: the producer may signal drain-complete before
// the consumer ever enters Wait.
//
// The zero value is not usable; construct with NewLatch.
type Latch struct {
	mu       sync.Mutex
	cond     *sync.Cond
	signaled bool
}

// NewLatch returns a cleared Latch.
func NewLatch() *Latch {
	l := &Latch{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Set atomically marks the latch signaled and wakes every current and
// future waiter until the next Clear. Safe to call from any goroutine,
// any number of times; idempotent.
func (l *Latch) Set() {
	l.mu.Lock()
	l.signaled = true
	l.mu.Unlock()
	l.cond.Broadcast()
}

// Clear atomically marks the latch unsignaled. Waiters that already
// returned from Wait are unaffected; future Wait calls block until the
// next Set. Idempotent.
func (l *Latch) Clear() {
	l.mu.Lock()
	l.signaled = false
	l.mu.Unlock()
}

// Wait blocks until the latch is signaled, then returns. If the latch
// is already signaled when Wait is entered, it returns immediately
// without clearing it. Spurious wakeups are tolerated: the predicate
// is rechecked under the lock in a loop.
func (l *Latch) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for !l.signaled {
		l.cond.Wait()
	}
}

// Signaled reports whether the latch is currently set, without
// blocking. Intended for diagnostics; ordinary control flow should
// use Wait.
func (l *Latch) Signaled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.signaled
}
