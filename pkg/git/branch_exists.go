package git

// BranchExists checks if a branch exists locally.
// show-ref exits non-zero when the ref is missing, which is reported as (false, nil).
// A command that never ran keeps its error.
func (g *realGit) BranchExists(repoPath, branch string) (bool, error) {
	result, err := g.runner.Run(repoPath, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err == nil {
		return true, nil
	}
	if KindOf(err) == KindCommandFailed && result.ExitCode > 0 {
		return false, nil
	}
	return false, err
}
