// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	pipeline "github.com/yuvalerdreich/Modular-Pipeline-System"
)

// =============================================================================
// StringQueue - Basic Operations
// =============================================================================

// TestQueueFIFOBasic verifies enqueue/dequeue preserve FIFO order.
func TestQueueFIFOBasic(t *testing.T) {
	q, err := pipeline.NewStringQueue(4)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}

	want := []string{"a", "b", "c", "d"}
	for _, s := range want {
		if err := q.Enqueue(s); err != nil {
			t.Fatalf("Enqueue(%q): %v", s, err)
		}
	}

	for i, s := range want {
		got, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue(%d): got !ok, want ok", i)
		}
		if got != s {
			t.Fatalf("Dequeue(%d): got %q, want %q", i, got, s)
		}
	}
}

// TestQueueCapacityRejectsInvalid verifies capacity < 1 is an error,
// per spec.md §4.2's init(K) contract (capacity >= 1).
func TestQueueCapacityRejectsInvalid(t *testing.T) {
	for _, cap := range []int{0, -1, -100} {
		if _, err := pipeline.NewStringQueue(cap); err == nil {
			t.Fatalf("NewStringQueue(%d): got nil error, want error", cap)
		}
	}
}

// TestQueueCapacityOne verifies the K=1 boundary case works: a
// single-slot queue holds one record, and a second Enqueue blocks until
// a Dequeue frees the slot.
func TestQueueCapacityOne(t *testing.T) {
	q, err := pipeline.NewStringQueue(1)
	if err != nil {
		t.Fatalf("NewStringQueue(1): %v", err)
	}
	if q.Cap() != 1 {
		t.Fatalf("Cap: got %d, want 1", q.Cap())
	}

	if err := q.Enqueue("only"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	enqueued := make(chan error, 1)
	go func() {
		enqueued <- q.Enqueue("second")
	}()

	select {
	case <-enqueued:
		t.Fatal("second Enqueue returned before queue had room")
	case <-time.After(50 * time.Millisecond):
	}

	got, ok := q.Dequeue()
	if !ok || got != "only" {
		t.Fatalf("Dequeue: got (%q, %v), want (\"only\", true)", got, ok)
	}

	select {
	case err := <-enqueued:
		if err != nil {
			t.Fatalf("second Enqueue: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second Enqueue never unblocked after room freed")
	}

	got, ok = q.Dequeue()
	if !ok || got != "second" {
		t.Fatalf("Dequeue: got (%q, %v), want (\"second\", true)", got, ok)
	}
}

// TestQueueEnqueueBlocksWhenFull verifies Enqueue blocks (rather than
// erroring) on a full, unfinished queue, per spec.md §7's "QueueFull
// is not an error - it blocks".
func TestQueueEnqueueBlocksWhenFull(t *testing.T) {
	q, err := pipeline.NewStringQueue(2)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}
	if err := q.Enqueue("a"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if err := q.Enqueue("b"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	blocked := make(chan error, 1)
	go func() {
		blocked <- q.Enqueue("c")
	}()

	select {
	case <-blocked:
		t.Fatal("Enqueue on full queue returned without blocking")
	case <-time.After(50 * time.Millisecond):
	}

	if _, ok := q.Dequeue(); !ok {
		t.Fatal("Dequeue: got !ok, want ok")
	}

	select {
	case err := <-blocked:
		if err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("blocked Enqueue never unblocked after Dequeue freed a slot")
	}
}

// TestQueueDequeueBlocksWhenEmpty verifies Dequeue blocks on an empty,
// unfinished queue rather than returning immediately.
func TestQueueDequeueBlocksWhenEmpty(t *testing.T) {
	q, err := pipeline.NewStringQueue(2)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}

	result := make(chan string, 1)
	go func() {
		s, _ := q.Dequeue()
		result <- s
	}()

	select {
	case <-result:
		t.Fatal("Dequeue on empty queue returned without blocking")
	case <-time.After(50 * time.Millisecond):
	}

	if err := q.Enqueue("late"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	select {
	case s := <-result:
		if s != "late" {
			t.Fatalf("Dequeue: got %q, want %q", s, "late")
		}
	case <-time.After(time.Second):
		t.Fatal("blocked Dequeue never unblocked after Enqueue")
	}
}

// TestQueueSignalFinishedUnblocksEnqueue verifies a producer blocked on
// a full queue is released with ErrQueueFinished once the queue is
// marked finished, rather than hanging forever.
func TestQueueSignalFinishedUnblocksEnqueue(t *testing.T) {
	q, err := pipeline.NewStringQueue(1)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}
	if err := q.Enqueue("a"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	blocked := make(chan error, 1)
	go func() {
		blocked <- q.Enqueue("b")
	}()

	time.Sleep(20 * time.Millisecond)
	q.SignalFinished()

	select {
	case err := <-blocked:
		if !errors.Is(err, pipeline.ErrQueueFinished) {
			t.Fatalf("Enqueue after SignalFinished: got %v, want ErrQueueFinished", err)
		}
	case <-time.After(time.Second):
		t.Fatal("blocked Enqueue never unblocked after SignalFinished")
	}
}

// TestQueueDequeueDrainsThenMarksDone verifies that after
// SignalFinished, Dequeue still drains whatever was already enqueued,
// and only then returns the terminal ("", false) marker.
func TestQueueDequeueDrainsThenMarksDone(t *testing.T) {
	q, err := pipeline.NewStringQueue(4)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}
	if err := q.Enqueue("x"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if err := q.Enqueue("y"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	q.SignalFinished()

	for _, want := range []string{"x", "y"} {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue: got (%q, %v), want (%q, true)", got, ok, want)
		}
	}

	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue after drain+finished: got ok, want !ok")
	}
}

// TestQueueFinishedIdempotent verifies SignalFinished may be called
// more than once without panicking or changing behavior.
func TestQueueFinishedIdempotent(t *testing.T) {
	q, err := pipeline.NewStringQueue(2)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}
	q.SignalFinished()
	q.SignalFinished()
	if !q.Finished() {
		t.Fatal("got not finished, want finished")
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue on finished empty queue: got ok, want !ok")
	}
}

// TestQueueWrapAround verifies index bookkeeping survives many
// fill/drain cycles past the ring's capacity boundary.
func TestQueueWrapAround(t *testing.T) {
	q, err := pipeline.NewStringQueue(4)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}

	for round := range 20 {
		for i := range 4 {
			s := recordName(round, i)
			if err := q.Enqueue(s); err != nil {
				t.Fatalf("round %d enqueue %d: %v", round, i, err)
			}
		}
		for i := range 4 {
			want := recordName(round, i)
			got, ok := q.Dequeue()
			if !ok || got != want {
				t.Fatalf("round %d dequeue %d: got (%q, %v), want (%q, true)", round, i, got, ok, want)
			}
		}
	}
}

func recordName(round, i int) string {
	return string(rune('a'+round%26)) + string(rune('0'+i))
}

// TestQueueSlowConsumerFastProducer verifies that with capacity 2, a
// slow consumer and a fast producer still yield exactly as many
// dequeues as enqueues: blocking backpressure, not drops.
func TestQueueSlowConsumerFastProducer(t *testing.T) {
	q, err := pipeline.NewStringQueue(2)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}

	const n = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range n {
			if err := q.Enqueue(recordName(i, i%4)); err != nil {
				t.Errorf("Enqueue(%d): %v", i, err)
				return
			}
		}
		q.SignalFinished()
	}()

	count := 0
	for {
		_, ok := q.Dequeue()
		if !ok {
			break
		}
		count++
		time.Sleep(100 * time.Microsecond) // slow consumer
	}
	wg.Wait()

	if count != n {
		t.Fatalf("dequeue count: got %d, want %d", count, n)
	}
}

// TestQueueCloseClearsSlots verifies Close resets bookkeeping so a
// closed queue reports empty, matching the teacher ecosystem's
// destroy contract (callers guarantee no concurrent operations).
func TestQueueCloseClearsSlots(t *testing.T) {
	q, err := pipeline.NewStringQueue(2)
	if err != nil {
		t.Fatalf("NewStringQueue: %v", err)
	}
	if err := q.Enqueue("only"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	q.SignalFinished()
	if _, ok := q.Dequeue(); !ok {
		t.Fatal("Dequeue: got !ok, want ok")
	}
	q.Close()
	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue after Close: got ok, want !ok")
	}
}
