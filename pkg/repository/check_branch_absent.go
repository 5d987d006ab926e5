package repository

import (
	"fmt"

	"github.com/lerenn/project-init/pkg/git"
)

// CheckBranchAbsent checks that refs/heads/<branch> does not exist.
func (v *realValidator) CheckBranchAbsent(branch string) ValidationResult {
	v.params.Logger.Debugf("Checking if branch '%s' exists...", branch)

	exists, err := v.params.Git.BranchExists(v.params.RepositoryPath, branch)
	if err != nil {
		if git.KindOf(err) == git.KindToolingUnavailable {
			return ValidationResult{Outcome: OutcomeToolingUnavailable, Message: err.Error(), Cause: err}
		}
		return ValidationResult{Outcome: OutcomeOtherFailure, Message: err.Error(), Cause: err}
	}

	if exists {
		v.params.Logger.Errorf("Branch '%s' already exists.", branch)
		return ValidationResult{
			Outcome: OutcomeBranchAlreadyExists,
			Message: fmt.Sprintf("branch '%s' already exists", branch),
		}
	}

	v.params.Logger.Infof("Branch '%s' does not exist.", branch)
	return ok()
}
