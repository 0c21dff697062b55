// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transform provides the six built-in pipeline transformations
// (logger, typewriter, uppercaser, rotator, flipper, expander) and a
// name-keyed Registry the CLI uses to resolve a stage name string to a
// pipeline.Transformer without a static switch statement.
//
// Each transformation self-registers with the package-level Default
// registry via an init function, mirroring how the original C plugins
// are each a standalone, independently loadable unit.
package transform
