// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command pipeline is the CLI frontend for the Modular Pipeline
// System: prog <queue_size> <stage_name_1> ... <stage_name_N>.
package main

import (
	"errors"
	"fmt"
	"os"

	pipeline "github.com/yuvalerdreich/Modular-Pipeline-System"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand()
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case isUsageOrLoadError(err):
		fmt.Fprintln(os.Stderr, err)
		return 1
	case isInitError(err):
		fmt.Fprintln(os.Stderr, err)
		return 2
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}

func isUsageOrLoadError(err error) bool {
	var usage *pipeline.UsageError
	var load *pipeline.LoadError
	return errors.As(err, &usage) || errors.As(err, &load)
}

func isInitError(err error) bool {
	var initErr *pipeline.InitError
	return errors.As(err, &initErr)
}
