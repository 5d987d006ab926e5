package repository

// CheckRepository checks that the repository path is inside a Git repository whose HEAD
// resolves to a commit. Any failure of the repository query, a missing git binary
// included, is reported as OutcomeNotARepository. An unborn HEAD is reported as
// OutcomeOtherFailure since a branch cannot be created before the first commit.
func (v *realValidator) CheckRepository() ValidationResult {
	v.params.Logger.Debugf("Checking if %s is a Git repository...", v.params.RepositoryPath)

	if err := v.params.Git.IsRepository(v.params.RepositoryPath); err != nil {
		v.params.Logger.Errorf("Not a Git repository: %v", err)
		return ValidationResult{
			Outcome: OutcomeNotARepository,
			Message: "not a Git repository",
			Cause:   err,
		}
	}

	head, err := v.params.Git.DescribeHead(v.params.RepositoryPath)
	if err != nil {
		v.params.Logger.Errorf("Failed to read HEAD: %v", err)
		return ValidationResult{
			Outcome: OutcomeOtherFailure,
			Message: "failed to read HEAD",
			Cause:   err,
		}
	}
	if head.Commit == "" {
		v.params.Logger.Errorf("Branch %s has no commits yet", head.Branch)
		return ValidationResult{
			Outcome: OutcomeOtherFailure,
			Message: "repository has no commits yet, create an initial commit first",
		}
	}

	v.params.Logger.Infof("Current directory is a Git repository.")
	return ok()
}
