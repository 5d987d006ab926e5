package git

import "fmt"

// Add adds files to the Git staging area.
func (g *realGit) Add(repoPath string, files ...string) error {
	args := append([]string{"add", "--"}, files...)
	if _, err := g.runner.Run(repoPath, args...); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}
	return nil
}
