package git

// IsRepository executes `git rev-parse --git-dir` in the specified directory.
func (g *realGit) IsRepository(repoPath string) error {
	_, err := g.runner.Run(repoPath, "rev-parse", "--git-dir")
	return err
}
