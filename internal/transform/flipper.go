// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import "github.com/yuvalerdreich/Modular-Pipeline-System"

// FlipperName is the registered name of the flipper transformation.
const FlipperName = "flipper"

// Flipper forwards the character-reverse of s.
type Flipper struct{}

// Transform implements pipeline.Transformer.
func (Flipper) Transform(s string) (string, bool) {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r), true
}

func init() {
	Default.Register(FlipperName, func() pipeline.Transformer { return Flipper{} })
}
