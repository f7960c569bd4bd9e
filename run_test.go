package tagcheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunner_SplitsOutput(t *testing.T) {
	t.Parallel()

	r := ShellRunner{}
	tags, err := r.ListTags(context.Background(), `printf '1.0\n\n  1.1  \n1.2\n'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0", "1.1", "1.2"}, tags)
}

func TestShellRunner_PipesWork(t *testing.T) {
	t.Parallel()

	// Enumeration commands routinely end in a jq stage; the whole
	// string must go through the shell untouched.
	r := ShellRunner{}
	tags, err := r.ListTags(context.Background(), `printf '1\n2\n3\n' | tail -n 2`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, tags)
}

func TestShellRunner_EmptyOutput(t *testing.T) {
	t.Parallel()

	r := ShellRunner{}
	tags, err := r.ListTags(context.Background(), "true")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestShellRunner_NonZeroExit(t *testing.T) {
	t.Parallel()

	r := ShellRunner{}
	tags, err := r.ListTags(context.Background(), "exit 3")
	require.Error(t, err)
	assert.Nil(t, tags)
}

func TestShellRunner_CommandNotFound(t *testing.T) {
	t.Parallel()

	r := ShellRunner{}
	_, err := r.ListTags(context.Background(), "definitely-not-a-command-xyz")
	require.Error(t, err)
}

func TestShellRunner_Timeout(t *testing.T) {
	t.Parallel()

	r := ShellRunner{Timeout: 50 * time.Millisecond}

	start := time.Now()
	_, err := r.ListTags(context.Background(), "sleep 5")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second, "timeout must abandon the subprocess")
}

func TestShellRunner_ParentContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := ShellRunner{}
	_, err := r.ListTags(ctx, "echo 1.0")
	require.Error(t, err)
}
