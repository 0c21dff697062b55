// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yuvalerdreich/Modular-Pipeline-System"
)

// TypewriterName is the registered name of the typewriter
// transformation.
const TypewriterName = "typewriter"

// DefaultTypewriterDelay is the inter-character delay the original
// plugin hard-codes via usleep(100000).
const DefaultTypewriterDelay = 100 * time.Millisecond

// Typewriter writes "[typewriter] " then each character of s with an
// inter-character delay, then a newline, and forwards s unchanged.
type Typewriter struct {
	Writer io.Writer
	Delay  time.Duration
}

// NewTypewriter returns a Typewriter writing to os.Stdout with
// DefaultTypewriterDelay between characters.
func NewTypewriter() *Typewriter {
	return &Typewriter{Writer: os.Stdout, Delay: DefaultTypewriterDelay}
}

// Transform implements pipeline.Transformer.
func (t *Typewriter) Transform(s string) (string, bool) {
	w := t.Writer
	if w == nil {
		w = os.Stdout
	}
	delay := t.Delay
	if delay <= 0 {
		delay = DefaultTypewriterDelay
	}

	fmt.Fprint(w, "[typewriter] ")
	for _, r := range s {
		fmt.Fprintf(w, "%c", r)
		time.Sleep(delay)
	}
	fmt.Fprint(w, "\n")
	return s, true
}

func init() {
	Default.Register(TypewriterName, func() pipeline.Transformer { return NewTypewriter() })
}
