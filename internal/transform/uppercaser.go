// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import "github.com/yuvalerdreich/Modular-Pipeline-System"

// UppercaserName is the registered name of the uppercaser
// transformation.
const UppercaserName = "uppercaser"

// Uppercaser forwards s with its ASCII letters upper-cased.
// Applying it twice gives the same result as applying it once
// (uppercaser∘uppercaser ≡ uppercaser).
type Uppercaser struct{}

// Transform implements pipeline.Transformer.
func (Uppercaser) Transform(s string) (string, bool) {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b), true
}

func init() {
	Default.Register(UppercaserName, func() pipeline.Transformer { return Uppercaser{} })
}
