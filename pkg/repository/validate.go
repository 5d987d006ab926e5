package repository

// Check names one precondition check.
type Check int

// Precondition checks, in the order Validate runs them.
const (
	CheckRepositoryExists Check = iota
	CheckWorkingTreeClean
	CheckBranchMissing
)

// String returns the name of the check.
func (c Check) String() string {
	switch c {
	case CheckRepositoryExists:
		return "repository"
	case CheckWorkingTreeClean:
		return "working tree"
	case CheckBranchMissing:
		return "branch"
	default:
		return "unknown"
	}
}

// Validate runs the repository, working tree and branch checks in that order and
// returns the first failing result. Later checks are not run once one fails.
// onCheck, when not nil, is called before each check runs.
func (v *realValidator) Validate(branch string, onCheck func(Check)) ValidationResult {
	checks := []struct {
		check Check
		run   func() ValidationResult
	}{
		{CheckRepositoryExists, v.CheckRepository},
		{CheckWorkingTreeClean, v.CheckWorkingTree},
		{CheckBranchMissing, func() ValidationResult { return v.CheckBranchAbsent(branch) }},
	}

	for _, c := range checks {
		if onCheck != nil {
			onCheck(c.check)
		}
		if result := c.run(); !result.OK() {
			return result
		}
	}
	return ok()
}
