// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipeline provides a concurrent text-transformation pipeline:
// a linear chain of stages, each applying a single per-record
// transformation to a stream of strings read from an upstream stage
// and forwarded to the next.
//
// # Quick Start
//
// Build a pipeline from a list of named transforms, feed it records,
// then wait for it to drain:
//
//	p, err := pipeline.New(4,
//	    pipeline.StageSpec{Name: "uppercaser", Transform: transform.Uppercaser{}},
//	    pipeline.StageSpec{Name: "logger", Transform: transform.NewLogger()},
//	)
//	if err != nil {
//	    // InitError or UsageError
//	}
//	p.Feed("hello")
//	p.Feed(pipeline.End)
//	if err := p.Wait(); err != nil {
//	    // a feed error was recorded; stages still drained cleanly
//	}
//
// # Core Types
//
//	Latch        - sticky, manual-reset, broadcast-wake one-shot signal
//	StringQueue  - bounded, blocking, FIFO queue of strings
//	Stage        - binds a Transformer to a queue and a downstream forwarder
//	Pipeline     - wires stages into a chain, feeds input, drains, tears down
//	Transformer  - the string→string contract a Stage wraps
//
// # The Sentinel
//
// The record whose payload is exactly End ("<END>") is never
// transformed. Each stage forwards it verbatim and then exits its
// worker loop, in order from stage 0 to the last stage — this is the
// only shutdown mechanism the pipeline has. The drain-complete
// handshake uses a sticky Latch rather than an auto-reset condition
// variable because the producer
// may signal completion before the consumer starts waiting, and an
// edge-triggered primitive would miss that signal and deadlock.
//
// # Concurrency Model
//
// One goroutine per stage plus the feeder (whatever calls Feed). A
// goroutine may only block inside StringQueue.Enqueue (queue full),
// StringQueue.Dequeue (queue empty), Latch.Wait, or while a Stage.Close
// joins its worker. There is no cancellation, no timeout, and no
// reordering: records from a single feeder traverse stage i before
// stage i+1, and two records fed in order arrive at every stage in
// that same order, because each stage has exactly one worker
// processing its queue serially.
//
// # Transformations
//
// The six built-in transformations (logger, typewriter, uppercaser,
// rotator, flipper, expander) live in the transform subpackage and
// register themselves with a Registry by name, so the CLI can resolve
// a stage name string to a Transformer without a static switch
// statement. Any type implementing Transformer can be used directly
// with Pipeline without going through the registry at all.
package pipeline
