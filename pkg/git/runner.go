package git

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mocks/runner.gen.go -package=mocks

const defaultBinary = "git"

// Result is the outcome of a single git invocation.
type Result struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a single git command synchronously.
type Runner interface {
	// Run executes git with args in workDir and captures its output.
	Run(workDir string, args ...string) (Result, error)
}

type execRunner struct {
	binary string
}

// NewRunner creates a Runner that executes the git binary found in PATH.
func NewRunner() Runner {
	return &execRunner{binary: defaultBinary}
}

// NewRunnerWithBinary creates a Runner that executes the given binary instead of git.
func NewRunnerWithBinary(binary string) Runner {
	if binary == "" {
		binary = defaultBinary
	}
	return &execRunner{binary: binary}
}

// Run executes the command and normalizes failures into *Error values.
func (r *execRunner) Run(workDir string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(r.binary, args...)
	cmd.Dir = workDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Args:     args,
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	if errors.Is(err, exec.ErrNotFound) || isMissingBinary(err, cmd.Path) {
		return result, &Error{
			Kind:    KindToolingUnavailable,
			Args:    args,
			Message: ErrToolingUnavailable.Message,
			Err:     err,
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return result, &Error{
			Kind:    KindCommandFailed,
			Args:    args,
			Message: failureMessage(r.binary, args, result.Stderr),
			Err:     err,
		}
	}

	// The process never started, e.g. workDir does not exist.
	return result, &Error{
		Kind:    KindCommandFailed,
		Args:    args,
		Message: fmt.Sprintf("%s failed to start", commandLine(r.binary, args)),
		Err:     err,
	}
}

// isMissingBinary reports whether err comes from a binary given by path that does not exist.
func isMissingBinary(err error, path string) bool {
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		return false
	}
	return pathErr.Path == path && errors.Is(pathErr.Err, fs.ErrNotExist)
}

func failureMessage(binary string, args []string, stderr string) string {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return msg
	}
	return commandLine(binary, args) + " failed"
}

func commandLine(binary string, args []string) string {
	return strings.TrimSpace(binary + " " + strings.Join(args, " "))
}
