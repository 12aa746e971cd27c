// Package runner launches the bpftrace probe against a target command and
// streams its output to the trace parser, grounded on the original
// implementation's small wrapper around bpftrace (bpftrace.rs).
package runner

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/not-matthias/fdtrace/internal/logger"
)

// ScriptPath is the default location of the bpftrace probe script, relative
// to the working directory the CLI is invoked from.
const ScriptPath = "scripts/fdtrace.bt"

// Options configures a probe run.
type Options struct {
	// ScriptPath overrides the default bpftrace script location.
	ScriptPath string
	// Sudo runs bpftrace through sudo, which it requires on most systems to
	// attach kprobes.
	Sudo bool
}

// Run launches bpftrace against command, returning a reader over its
// stdout (the line-oriented trace the caller should feed to trace.Parse)
// and a function that waits for the process to exit and reports its error.
// The returned stop function must be called exactly once, after the caller
// is done reading.
func Run(ctx context.Context, command string, opts Options) (io.ReadCloser, func() error, error) {
	script := opts.ScriptPath
	if script == "" {
		script = ScriptPath
	}

	args := []string{"-c", command, script}
	name := "bpftrace"
	if opts.Sudo {
		args = append([]string{"bpftrace"}, args...)
		name = "sudo"
	}

	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("runner: stdout pipe: %w", err)
	}
	cmd.Stderr = &stderrLogger{}

	logger.Debug.Printf("launching %s %v", name, args)
	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("runner: starting probe: %w", err)
	}

	stop := func() error {
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("runner: probe exited: %w", err)
		}
		return nil
	}

	return stdout, stop, nil
}

// stderrLogger routes the probe's stderr into the leveled logger rather than
// letting it interleave with the trace on stdout.
type stderrLogger struct{}

func (l *stderrLogger) Write(p []byte) (int, error) {
	logger.Warn.Printf("bpftrace: %s", p)
	return len(p), nil
}
