// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"sync"
)

// StageSpec names a Transformer for inclusion in a Pipeline. The name
// is a diagnostic identifier (Stage.GetName) and, in the CLI, the
// stage name the user gave on the command line.
type StageSpec struct {
	Name      string
	Transform Transformer
}

// Pipeline wires N stages into a linear chain: stage i's forwarder is
// stage i+1's PlaceWork, for every i < N-1; the last stage is
// terminal. See spec.md §3's Pipeline invariant.
type Pipeline struct {
	stages []*Stage

	mu      sync.Mutex
	fed     bool // true once End has been fed (by caller or synthesized)
	feedErr error
}

// New constructs a pipeline of len(specs) stages, each with capacity
// capacity, attaches them in order, and starts their worker
// goroutines. On any stage's Init failure, stages already
// initialized are torn down before returning the error, so no
// goroutine is leaked.
func New(capacity int, specs ...StageSpec) (*Pipeline, error) {
	if len(specs) == 0 {
		return nil, &UsageError{Msg: "at least one stage is required"}
	}

	stages := make([]*Stage, len(specs))
	for i, spec := range specs {
		stages[i] = NewStage(spec.Name, spec.Transform)
		if err := stages[i].Init(capacity); err != nil {
			for j := 0; j < i; j++ {
				stages[j].queue.SignalFinished()
				_ = stages[j].Close()
			}
			return nil, &InitError{Stage: spec.Name, Err: err}
		}
	}

	for i := 0; i < len(stages)-1; i++ {
		downstream := stages[i+1]
		if err := stages[i].Attach(downstream.PlaceWork); err != nil {
			// Unreachable in normal use (each stage is attached exactly
			// once, here, before any caller can reach it) but handled
			// per the at-most-once contract rather than panicking.
			for _, st := range stages {
				st.queue.SignalFinished()
				_ = st.Close()
			}
			return nil, &InitError{Stage: specs[i].Name, Err: err}
		}
	}

	return &Pipeline{stages: stages}, nil
}

// Feed hands one record to stage 0, blocking if stage 0's queue is
// full. Feeding End stops the pipeline accepting further records:
// subsequent Feed calls are no-ops returning nil, matching "the
// orchestrator must enqueue <END> exactly once" (spec.md §4.4). If
// PlaceWork fails, the error is recorded (retrievable from Wait) and
// stage 0 is force-finished so Wait does not hang waiting for a
// sentinel that will now never arrive.
func (p *Pipeline) Feed(record string) error {
	p.mu.Lock()
	if p.fed {
		p.mu.Unlock()
		return nil
	}
	if record == End {
		p.fed = true
	}
	p.mu.Unlock()

	if err := p.stages[0].PlaceWork(record); err != nil {
		p.mu.Lock()
		if p.feedErr == nil {
			p.feedErr = fmt.Errorf("feed: %w", err)
		}
		p.fed = true
		p.mu.Unlock()
		p.stages[0].queue.SignalFinished()
		return err
	}
	return nil
}

// Wait synthesizes End if it was never fed, waits for every stage to
// drain in order, tears every stage down in order, and returns the
// first feed error encountered (if any). Per spec.md §5's ordering
// guarantees, draining stage i before stage i+1 is always safe: stage
// i+1 cannot still be receiving once stage i has drained, because
// stage i only drains after forwarding End, which is the last thing
// stage i ever sends downstream.
func (p *Pipeline) Wait() error {
	p.mu.Lock()
	fed := p.fed
	p.mu.Unlock()
	if !fed {
		_ = p.Feed(End)
	}

	for i, s := range p.stages {
		_ = s.WaitFinished()
		// Stage i is stage i+1's only producer, so once it has drained
		// nothing more can arrive downstream. Finishing the next queue
		// lets that stage drain what it holds and exit even when End
		// never reached it (stage 0 force-finished after a feed error).
		if i+1 < len(p.stages) {
			p.stages[i+1].queue.SignalFinished()
		}
	}
	for _, s := range p.stages {
		_ = s.Close()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.feedErr
}

// Stages returns the pipeline's stages in chain order, for
// diagnostics (GetName, LastError, Processed).
func (p *Pipeline) Stages() []*Stage {
	out := make([]*Stage, len(p.stages))
	copy(out, p.stages)
	return out
}
