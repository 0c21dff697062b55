// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"sync"
)

// End is the sentinel record payload. A record equal to End is never
// transformed — it is forwarded verbatim by every stage and, once
// forwarded, ends that stage's worker loop.
const End = "<END>"

// StringQueue is a fixed-capacity, blocking, multi-producer/multi-
// consumer FIFO queue of strings. All operations serialize on a
// single mutex guarding the ring, the head/tail/count bookkeeping,
// and the finished flag, per the monitor pattern: the lock is
// released before blocking on a condition variable and the predicate
// is rechecked on wake.
//
// The zero value is not usable; construct with NewStringQueue.
type StringQueue struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	slots []string
	head  int
	tail  int
	count int

	finished bool
	drained  *Latch
}

// NewStringQueue allocates a queue with the given capacity. Capacity
// must be >= 1.
func NewStringQueue(capacity int) (*StringQueue, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("pipeline: queue capacity must be >= 1, got %d", capacity)
	}
	q := &StringQueue{
		slots:   make([]string, capacity),
		drained: NewLatch(),
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Cap returns the queue's fixed capacity.
func (q *StringQueue) Cap() int {
	return len(q.slots)
}

// Enqueue adds a copy of s to the queue, blocking while the queue is
// full and not finished. Returns ErrQueueFinished, without blocking,
// if the queue is finished at entry or becomes finished while
// waiting for room.
func (q *StringQueue) Enqueue(s string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == len(q.slots) && !q.finished {
		q.notFull.Wait()
	}
	if q.finished {
		return ErrQueueFinished
	}

	q.slots[q.tail] = s
	q.tail = (q.tail + 1) % len(q.slots)
	q.count++
	if q.count == 1 {
		q.notEmpty.Broadcast()
	}
	return nil
}

// Dequeue removes and returns the record at the head of the queue,
// blocking while the queue is empty and not finished. When the queue
// is empty and finished, it returns ("", false) — the terminal
// marker — without blocking, signaling the caller that the stream is
// exhausted. Queued records are never dropped by finishing a queue;
// they remain dequeuable until drained.
func (q *StringQueue) Dequeue() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 && !q.finished {
		q.notEmpty.Wait()
	}
	if q.count == 0 {
		return "", false
	}

	s := q.slots[q.head]
	q.slots[q.head] = ""
	q.head = (q.head + 1) % len(q.slots)
	q.count--
	if q.count == len(q.slots)-1 {
		q.notFull.Broadcast()
	}
	return s, true
}

// SignalFinished marks the queue finished and wakes every waiter on
// both conditions. Idempotent. Queued records remain dequeuable: this
// only stops new enqueues and unblocks waiters that would otherwise
// wait forever.
func (q *StringQueue) SignalFinished() {
	q.mu.Lock()
	q.finished = true
	q.mu.Unlock()
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

// Finished reports whether SignalFinished has been called. Monotonic:
// once true, never observed false again.
func (q *StringQueue) Finished() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.finished
}

// WaitDrained blocks until the owning stage's worker loop has exited.
// This is distinct from Finished: a queue can be finished while
// records it already holds are still being drained by its worker.
func (q *StringQueue) WaitDrained() {
	q.drained.Wait()
}

// signalDrained marks the worker loop as exited. Called exactly once,
// by the owning Stage, after its worker loop returns.
func (q *StringQueue) signalDrained() {
	q.drained.Set()
}

// Close releases the queue's records and is a no-op beyond that: the
// slice and mutex are reclaimed by the garbage collector once the
// queue is unreferenced. Callers must guarantee no concurrent
// operations, matching the teacher ecosystem's destroy contract.
func (q *StringQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.slots {
		q.slots[i] = ""
	}
	q.count, q.head, q.tail = 0, 0, 0
}
