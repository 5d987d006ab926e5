//go:build unit

package git

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run_Success(t *testing.T) {
	runner := NewRunnerWithBinary("sh")

	result, err := runner.Run(t.TempDir(), "-c", "echo hello; echo warning >&2")
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello\n", result.Stdout)
	assert.Equal(t, "warning\n", result.Stderr)
	assert.Equal(t, []string{"-c", "echo hello; echo warning >&2"}, result.Args)
}

func TestRunner_Run_NonZeroExitUsesTrimmedStderr(t *testing.T) {
	runner := NewRunnerWithBinary("sh")

	result, err := runner.Run(t.TempDir(), "-c", "echo '  fatal: something broke  ' >&2; exit 3")
	require.Error(t, err)
	assert.Equal(t, 3, result.ExitCode)

	var gitErr *Error
	require.True(t, errors.As(err, &gitErr))
	assert.Equal(t, KindCommandFailed, gitErr.Kind)
	assert.Equal(t, "fatal: something broke", gitErr.Message)
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestRunner_Run_NonZeroExitWithoutStderr(t *testing.T) {
	runner := NewRunnerWithBinary("sh")

	_, err := runner.Run(t.TempDir(), "-c", "exit 1")
	require.Error(t, err)

	var gitErr *Error
	require.True(t, errors.As(err, &gitErr))
	assert.Equal(t, KindCommandFailed, gitErr.Kind)
	assert.Equal(t, "sh -c exit 1 failed", gitErr.Message)
}

func TestRunner_Run_BinaryNotInPath(t *testing.T) {
	runner := NewRunnerWithBinary("definitely-not-a-real-git-binary")

	_, err := runner.Run(t.TempDir(), "status")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrToolingUnavailable)
	assert.Equal(t, KindToolingUnavailable, KindOf(err))
}

func TestRunner_Run_BinaryPathMissing(t *testing.T) {
	runner := NewRunnerWithBinary(filepath.Join(t.TempDir(), "git"))

	_, err := runner.Run(t.TempDir(), "status")
	require.Error(t, err)
	assert.Equal(t, KindToolingUnavailable, KindOf(err))
}

func TestRunner_Run_WorkDirMissing(t *testing.T) {
	runner := NewRunnerWithBinary("sh")

	_, err := runner.Run(filepath.Join(t.TempDir(), "missing"), "-c", "true")
	require.Error(t, err)
	assert.Equal(t, KindCommandFailed, KindOf(err))
}

func TestNewRunnerWithBinary_EmptyDefaultsToGit(t *testing.T) {
	runner := NewRunnerWithBinary("").(*execRunner)
	assert.Equal(t, "git", runner.binary)
}
