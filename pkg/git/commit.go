package git

import "fmt"

// Commit creates a new commit with the specified message.
func (g *realGit) Commit(repoPath, message string) error {
	if _, err := g.runner.Run(repoPath, "commit", "-m", message); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}
