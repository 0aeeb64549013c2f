// Package build runs the external static-site build.
//
// The build is an opaque shell command (by default "mkdocs build") run in the
// site root. A command that runs and exits non-zero is a completed build with
// a failing exit code, reported in Result rather than as an error; only a
// command that cannot be started at all is an error.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// ErrEmptyCommand is returned when no build command is configured.
var ErrEmptyCommand = errors.New("empty build command")

// Result holds the outcome of a build.
type Result struct {
	Command  string        `json:"command"`
	ExitCode int           `json:"exit_code"`
	Output   string        `json:"output,omitempty"` // combined stdout and stderr
	Duration time.Duration `json:"duration"`
}

// OK reports whether the build exited zero.
func (r Result) OK() bool { return r.ExitCode == 0 }

// Options configures a build run.
type Options struct {
	Dir    string    // working directory (site root)
	Stream io.Writer // if set, output is also copied here as it is produced
}

// Run executes command through the platform shell.
func Run(ctx context.Context, command string, opts Options) (Result, error) {
	res := Result{Command: command}
	if strings.TrimSpace(command) == "" {
		return res, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, shell[0], append(shell[1:], command)...)
	cmd.Dir = opts.Dir
	// Bound the wait for output pipes held open by grandchildren after a kill.
	cmd.WaitDelay = waitDelay

	var buf bytes.Buffer
	if opts.Stream != nil {
		cmd.Stdout = io.MultiWriter(&buf, opts.Stream)
	} else {
		cmd.Stdout = &buf
	}
	cmd.Stderr = cmd.Stdout

	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start)
	res.Output = buf.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("build %q: %w", command, ctxErr)
		}
		return res, nil
	default:
		return res, fmt.Errorf("build %q: %w", command, err)
	}
}

const waitDelay = 2 * time.Second

// shell is the command prefix used to interpret the build command.
var shell = func() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	return []string{"sh", "-c"}
}()
