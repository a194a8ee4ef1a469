package runner

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunCapturesStdout(t *testing.T) {
	r := &Runner{}
	exe := r.Run(context.Background(), "echo hello")
	assert.Equal(t, "echo hello", exe.Command)
	assert.Equal(t, "hello", exe.Output)
}

func TestRunNonZeroExitKeepsStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh exit semantics")
	}
	r := &Runner{}
	exe := r.Run(context.Background(), "echo partial; exit 3")
	assert.Equal(t, "partial", exe.Output)
}

func TestRunTimeoutBecomesOutputText(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sleep(1)")
	}
	r := &Runner{Timeout: 100 * time.Millisecond}
	exe := r.Run(context.Background(), "sleep 5")
	assert.Contains(t, exe.Output, "Error:")
	assert.Contains(t, exe.Output, "timed out")
}

func TestRunEmptyCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh semantics")
	}
	r := &Runner{}
	exe := r.Run(context.Background(), "")
	// sh -c "" exits 0 and produces nothing.
	assert.Equal(t, "", exe.Command)
	assert.Equal(t, "", exe.Output)
}
