// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"github.com/yuvalerdreich/Modular-Pipeline-System"
)

// ExpanderName is the registered name of the expander transformation.
const ExpanderName = "expander"

// Expander forwards s with a single space inserted between every pair
// of adjacent characters.
type Expander struct{}

// Transform implements pipeline.Transformer.
func (Expander) Transform(s string) (string, bool) {
	if len(s) < 2 {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s)*2 - 1)
	for i, r := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

func init() {
	Default.Register(ExpanderName, func() pipeline.Transformer { return Expander{} })
}
