// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import "github.com/yuvalerdreich/Modular-Pipeline-System"

// RotatorName is the registered name of the rotator transformation.
const RotatorName = "rotator"

// Rotator forwards s right-rotated by one position: the last
// character becomes the first. Strings of length 0 or 1 are
// unchanged. Rotation is a group action of order len(s): applying it
// len(s) times is the identity, which the test suite exercises via a
// round-trip chain of rotators and a flipper.
type Rotator struct{}

// Transform implements pipeline.Transformer.
func (Rotator) Transform(s string) (string, bool) {
	if len(s) < 2 {
		return s, true
	}
	b := make([]byte, len(s))
	b[0] = s[len(s)-1]
	copy(b[1:], s[:len(s)-1])
	return string(b), true
}

func init() {
	Default.Register(RotatorName, func() pipeline.Transformer { return Rotator{} })
}
