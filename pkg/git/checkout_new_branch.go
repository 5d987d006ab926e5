package git

import "fmt"

// CheckoutNewBranch creates a branch at HEAD and switches the working tree to it.
func (g *realGit) CheckoutNewBranch(repoPath, branch string) error {
	args := []string{"checkout", "-b", branch}
	if _, err := g.runner.Run(repoPath, args...); err != nil {
		return &Error{
			Kind:    KindBranchCreation,
			Args:    args,
			Message: fmt.Sprintf("failed to create branch '%s'", branch),
			Err:     err,
		}
	}
	return nil
}
