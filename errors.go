// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrQueueFinished is returned by Enqueue when the queue has been
// marked finished: no further records may be added. It is a control
// flow signal rather than a failure — the producer's work is done,
// not broken — so it is classified the same way the teacher ecosystem
// classifies ErrWouldBlock: see IsSemantic and IsNonFailure.
var ErrQueueFinished = errors.New("pipeline: queue is finished")

// ErrNotInitialized is returned by Stage operations performed before
// Init has succeeded, and by Close when called before a successful
// Init (see the Open Questions entry in DESIGN.md).
var ErrNotInitialized = errors.New("pipeline: stage not initialized")

// ErrAlreadyAttached is returned by Stage.Attach when called more
// than once. Attach is at-most-once by contract.
var ErrAlreadyAttached = errors.New("pipeline: stage already attached")

// UsageError reports malformed CLI invocation: bad queue_size, or no
// stage names given. Maps to exit code 1.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "usage: " + e.Msg }

// LoadError reports a stage name the Transform Registry could not
// resolve. Maps to exit code 1.
type LoadError struct {
	Name string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load: unknown stage %q", e.Name)
}

// InitError reports a Stage.Init failure (bad capacity, allocation or
// goroutine-spawn failure). Maps to exit code 2.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init: stage %q: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// IsSemantic reports whether err is a control flow signal rather than
// a failure. Delegates to iox.IsSemantic for ErrWouldBlock-family
// errors, and additionally treats ErrQueueFinished as semantic: a
// finished queue is an expected end state, not a defect.
func IsSemantic(err error) bool {
	if errors.Is(err, ErrQueueFinished) {
		return true
	}
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition:
// nil, ErrQueueFinished, or anything iox.IsNonFailure already
// recognizes.
func IsNonFailure(err error) bool {
	if err == nil || errors.Is(err, ErrQueueFinished) {
		return true
	}
	return iox.IsNonFailure(err)
}
