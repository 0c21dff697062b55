// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

// Transformer is the pure string→string contract a Stage binds to a
// queue. The orchestrator knows nothing concrete about implementers —
// any type satisfying this interface can sit in a pipeline.
//
// Transform receives a record and returns the transformed record plus
// whether it should be forwarded. Returning (_, false) drops the
// record: the worker proceeds to the next record without forwarding
// anything. This replaces the original C ABI's "NULL return means
// drop" convention with an explicit Go idiom, avoiding the
// same-pointer-means-pass-through aliasing the C version required.
//
// The sentinel record (End) is never passed to Transform; the Stage
// worker intercepts and forwards it directly.
type Transformer interface {
	Transform(s string) (out string, forward bool)
}

// TransformerFunc adapts a plain function to the Transformer
// interface, the way http.HandlerFunc adapts a function to
// http.Handler.
type TransformerFunc func(s string) (string, bool)

// Transform calls f(s).
func (f TransformerFunc) Transform(s string) (string, bool) { return f(s) }

// PassThrough wraps a string-to-string function that always forwards
// its result, for the common case where a transformation never drops
// records.
func PassThrough(f func(s string) string) Transformer {
	return TransformerFunc(func(s string) (string, bool) {
		return f(s), true
	})
}
