// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package obslog wires the pipeline's structured, stage-lifecycle
// logging: Init/Attach/Close events, and the error taxonomy
// (UsageError, LoadError, InitError) raised while assembling or
// running a Pipeline. It is deliberately separate from the
// transformations' own stdout writes (internal/transform's Logger and
// Typewriter), which are pipeline *data*, not pipeline *telemetry*.
//
// The construction idiom — stumpy.L.New(stumpy.L.WithStumpy(
// stumpy.WithWriter(...)), stumpy.L.WithLevel(...)) — is grounded on
// _examples/joeycumines-go-utilpkg/logiface-stumpy/example_test.go.
package obslog

import (
	"io"
	"os"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// ParseLevel maps the config package's string levels onto
// logiface.Level, defaulting to LevelInformational for an unrecognized
// or empty value.
func ParseLevel(s string) logiface.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logiface.LevelDebug
	case "warn", "warning":
		return logiface.LevelWarning
	case "error", "err":
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}

// New builds a stumpy-backed logiface logger writing newline-delimited
// JSON to w, filtered to the given minimum level. A nil w defaults to
// os.Stderr, matching stumpy's own default.
func New(level logiface.Level, w io.Writer) *logiface.Logger[*stumpy.Event] {
	if w == nil {
		w = os.Stderr
	}
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(w),
		),
		stumpy.L.WithLevel(level),
	)
}

// Stage-lifecycle and error-taxonomy field/message names, kept as
// constants so call sites can't typo a field key across packages.
const (
	FieldStage     = "stage"
	FieldCapacity  = "capacity"
	FieldProcessed = "processed"

	MsgStageInitialized = "stage initialized"
	MsgStageAttached    = "stage attached"
	MsgStageClosed      = "stage closed"
	MsgPipelineReady    = "pipeline ready"
	MsgPipelineDone     = "pipeline shutdown complete"
)
