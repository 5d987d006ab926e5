package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// SetupTestRepo creates a temporary git repository with one commit on branch main.
func SetupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := t.TempDir()

	RunTestGit(t, repoPath, "init", "--initial-branch=main")
	RunTestGit(t, repoPath, "config", "user.name", "Test User")
	RunTestGit(t, repoPath, "config", "user.email", "test@example.com")
	RunTestGit(t, repoPath, "config", "commit.gpgsign", "false")

	WriteTestFile(t, repoPath, "README.md", "# Test Repository\n")
	RunTestGit(t, repoPath, "add", "README.md")
	RunTestGit(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// RunTestGit runs git in dir and fails the test on error. It returns trimmed stdout.
func RunTestGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		t.Fatalf("git %s failed: %v (%s)", strings.Join(args, " "), err, stderr)
	}
	return strings.TrimSpace(string(output))
}

// WriteTestFile writes content to name inside dir, creating parent directories.
func WriteTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}
