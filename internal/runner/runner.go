// Package runner executes remediation commands through the platform shell.
//
// Commands come straight out of the policy tables with placeholder values
// interpolated as-is; there is no validation or escaping. That trust
// boundary is deliberate: this is a local interactive tool running commands
// the user has just been shown and has confirmed.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultTimeout caps each command. A command that exceeds it is killed and
// its failure captured as output text, never as a process fault.
const DefaultTimeout = 15 * time.Second

// Execution is one command together with whatever it produced.
type Execution struct {
	Command string `json:"command"`
	Output  string `json:"output"`
}

// Func runs one shell command. session takes the runner through this type so
// tests can substitute a fake.
type Func func(ctx context.Context, command string) Execution

// Runner runs commands through the shell with a per-command timeout.
type Runner struct {
	Timeout time.Duration
}

// Run executes command and captures its standard output. A non-zero exit
// still yields the stdout that was produced; a timeout or a command that
// could not start yields an "Error: ..." line instead. Errors never
// propagate: the caller always gets something printable.
func (r *Runner) Run(ctx context.Context, command string) Execution {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	shell, flag := shellCommand()
	cmd := exec.CommandContext(cctx, shell, flag, command)
	var out bytes.Buffer
	cmd.Stdout = &out

	err := cmd.Run()
	switch {
	case err == nil:
		return Execution{Command: command, Output: strings.TrimSpace(out.String())}
	case errors.Is(cctx.Err(), context.DeadlineExceeded):
		return Execution{Command: command, Output: fmt.Sprintf("Error: command timed out after %s", timeout)}
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Command ran and failed; its stdout is still the useful part.
			return Execution{Command: command, Output: strings.TrimSpace(out.String())}
		}
		return Execution{Command: command, Output: "Error: " + err.Error()}
	}
}

func shellCommand() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/c"
	}
	return "sh", "-c"
}
