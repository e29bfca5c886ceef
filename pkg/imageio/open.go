package imageio

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Open runs an external viewer on path and waits for it to exit.
// command may carry arguments, e.g. "feh --fullscreen"; path is appended last.
func Open(ctx context.Context, command, path string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return &ProcessError{Command: command, Err: exec.ErrNotFound}
	}

	args := append(fields[1:], path)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &ProcessError{Command: command, Err: err, Stderr: strings.TrimSpace(stderr.String())}
	}
	return nil
}
