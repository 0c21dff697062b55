// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"fmt"
	"io"
	"os"

	"github.com/yuvalerdreich/Modular-Pipeline-System"
)

// LoggerName is the registered name of the logger transformation.
const LoggerName = "logger"

// Logger writes "[logger] <s>" to its writer and forwards s unchanged.
// A pipeline of just Logger is the identity on the record stream
// aside from this side effect.
type Logger struct {
	Writer io.Writer
}

// NewLogger returns a Logger writing to os.Stdout, the default used by
// the registry factory.
func NewLogger() *Logger {
	return &Logger{Writer: os.Stdout}
}

// Transform implements pipeline.Transformer.
func (l *Logger) Transform(s string) (string, bool) {
	w := l.Writer
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "[logger] %s\n", s)
	return s, true
}

func init() {
	Default.Register(LoggerName, func() pipeline.Transformer { return NewLogger() })
}
