package tagcheck

import (
	"context"
	"fmt"
	"time"

	execute "github.com/alexellis/go-execute/v2"
)

// DefaultTimeout bounds a single enumeration command.
const DefaultTimeout = 30 * time.Second

// TagLister enumerates the available tags for one source. Implementations
// return an error for any failure (non-zero exit, timeout, exec fault);
// a nil error with an empty list means the command succeeded but the
// registry reported no tags.
type TagLister interface {
	ListTags(ctx context.Context, command string) ([]string, error)
}

// ShellRunner runs enumeration commands through "sh -c", so pipes and
// filters inside the command work as written. The command string comes
// from the checked repository's own configuration and is trusted input;
// shell interpretation is the point, not an accident.
type ShellRunner struct {
	// Timeout bounds each invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

// ListTags executes command and returns its stdout split into trimmed,
// non-empty lines. Order is preserved as emitted. No retries: a failed
// or timed-out command is reported once and abandoned, partial output
// included.
func (r ShellRunner) ListTags(ctx context.Context, command string) ([]string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	task := execute.ExecTask{
		Command: "sh",
		Args:    []string{"-c", command},
	}

	res, err := task.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("execute %q: %w", command, err)
	}

	if res.ExitCode != 0 {
		return nil, fmt.Errorf("execute %q: exit code %d", command, res.ExitCode)
	}

	return nonEmptyLines(res.Stdout), nil
}
