package git

// StatusPorcelain executes `git status --porcelain` in the specified directory.
// Staged, unstaged and untracked entries all show up in the output.
func (g *realGit) StatusPorcelain(repoPath string) (string, error) {
	result, err := g.runner.Run(repoPath, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}
