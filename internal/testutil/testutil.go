// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package testutil provides small polling helpers for tests that
// observe state mutated by another goroutine (a stage's worker loop,
// a feeder) without a channel to synchronize on. The backoff-and-poll
// shape is grounded on the teacher ecosystem's own test helpers
// (_examples/hayabusa-cloud-lfq/correctness_test.go's
// `backoff := iox.Backoff{}` retry loops around a condition), adapted
// from retrying a CAS operation to retrying a plain predicate.
package testutil

import (
	"time"

	"code.hybscloud.com/iox"
)

// PollUntil polls cond, backing off between attempts via iox.Backoff,
// until cond returns true or timeout elapses. Returns false on
// timeout.
func PollUntil(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	var backoff iox.Backoff
	for {
		if cond() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		backoff.Wait()
	}
}
