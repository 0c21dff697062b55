// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	pipeline "github.com/yuvalerdreich/Modular-Pipeline-System"
	"github.com/yuvalerdreich/Modular-Pipeline-System/internal/config"
	"github.com/yuvalerdreich/Modular-Pipeline-System/internal/obslog"
	"github.com/yuvalerdreich/Modular-Pipeline-System/internal/transform"
)

// maxLineBytes is the maximum stdin record length, per spec.md §6.
const maxLineBytes = 1024

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline <queue_size> <stage_name_1> [stage_name_2 ...]",
		Short: "Run a chain of stage transformations over stdin records",
		Long: `pipeline reads one record per line from stdin and feeds it through a
linear chain of named stage transformations, each running on its own
goroutine with a bounded queue between stages.

The line "<END>" terminates input explicitly; stdin closing first
synthesizes it. Clean shutdown prints "Pipeline shutdown complete" and
exits 0.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return &pipeline.UsageError{Msg: "expected <queue_size> and at least one stage name"}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPipeline,
	}
	return cmd
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := obslog.New(obslog.ParseLevel(cfg.LogLevel), os.Stderr)

	capacity, err := parseQueueSize(args[0])
	if err != nil {
		log.Err().Str("arg", args[0]).Log("invalid queue_size")
		return err
	}

	stageNames := args[1:]
	specs := make([]pipeline.StageSpec, len(stageNames))
	for i, name := range stageNames {
		t, ok := transform.Default.New(name)
		if !ok {
			log.Err().Str(obslog.FieldStage, name).Log("unknown stage")
			return &pipeline.LoadError{Name: name}
		}
		specs[i] = pipeline.StageSpec{Name: name, Transform: t}
	}

	p, err := pipeline.New(capacity, specs...)
	if err != nil {
		log.Err().Err(err).Log("pipeline construction failed")
		return err
	}
	log.Info().Int64(obslog.FieldCapacity, int64(capacity)).Log(obslog.MsgPipelineReady)

	if err := feed(cmd.InOrStdin(), p); err != nil {
		log.Warning().Err(err).Log("feed loop ended with error")
	}

	if err := p.Wait(); err != nil {
		log.Err().Err(err).Log("pipeline finished with error")
		return err
	}

	for _, s := range p.Stages() {
		log.Info().
			Str(obslog.FieldStage, s.GetName()).
			Int64(obslog.FieldProcessed, s.Processed()).
			Log(obslog.MsgStageClosed)
	}
	log.Info().Log(obslog.MsgPipelineDone)

	fmt.Fprintln(cmd.OutOrStdout(), "Pipeline shutdown complete")
	return nil
}

// parseQueueSize rejects anything ParseInt doesn't fully consume, so
// "8x" is a usage error rather than silently truncating to 8.
func parseQueueSize(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, &pipeline.UsageError{Msg: fmt.Sprintf("queue_size must be a positive decimal integer, got %q", s)}
	}
	return int(n), nil
}

// feed reads newline-delimited records from r, truncated to
// maxLineBytes, and forwards them to p.Feed until "<END>" (explicit or
// synthesized on EOF). A line longer than bufio.MaxScanTokenSize ends
// the scan with an error, after which "<END>" is synthesized.
func feed(r io.Reader, p *pipeline.Pipeline) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, maxLineBytes+1), bufio.MaxScanTokenSize)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > maxLineBytes {
			line = line[:maxLineBytes]
		}
		if err := p.Feed(line); err != nil {
			return err
		}
		if line == pipeline.End {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		_ = p.Feed(pipeline.End)
		return err
	}
	return p.Feed(pipeline.End)
}
