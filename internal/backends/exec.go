package backends

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// RunLines runs argv, captures its stdout, and returns the output split
// into lines with the leading informational header removed. Stderr is
// discarded. A missing command or non-zero exit is returned as an error;
// there is no retry and no timeout beyond what ctx imposes.
func RunLines(ctx context.Context, argv []string) ([]string, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", argv[0], err)
	}
	return StripHeader(out), nil
}

// StripHeader splits raw command output into lines, dropping the first
// line (the tool's informational header) and the trailing newline.
func StripHeader(out []byte) []string {
	trimmed := strings.TrimRight(string(out), "\n")
	lines := strings.Split(trimmed, "\n")
	if len(lines) <= 1 {
		// Header only, or no output at all
		return nil
	}
	return lines[1:]
}

// RunSync runs argv with stdout and stderr redirected to w, blocking
// until the process exits. A command that cannot be started returns an
// error; a non-zero exit is logged and swallowed, since sync tools are
// fire-and-forget from the caller's point of view.
func RunSync(ctx context.Context, argv []string, w io.Writer, log zerolog.Logger) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = w
	cmd.Stderr = w
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", argv[0], err)
	}
	if err := cmd.Wait(); err != nil {
		log.Warn().Str("command", argv[0]).Err(err).Msg("sync command exited with error")
	}
	return nil
}

// CommandAvailable reports whether name resolves to an executable on PATH.
func CommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
