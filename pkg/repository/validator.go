package repository

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=validator.go -destination=mocks/validator.gen.go -package=mocks

// Validator runs the read-only precondition checks before a project branch is created.
type Validator interface {
	// CheckRepository checks that the repository path is inside a Git repository.
	CheckRepository() ValidationResult
	// CheckWorkingTree checks that there are no staged, unstaged or untracked changes.
	CheckWorkingTree() ValidationResult
	// CheckBranchAbsent checks that refs/heads/<branch> does not exist.
	CheckBranchAbsent(branch string) ValidationResult
	// Validate runs the three checks in order and stops at the first failure. onCheck is
	// called with each check about to run and may be nil.
	Validate(branch string, onCheck func(Check)) ValidationResult
}

type realValidator struct {
	params NewRepositoryParams
}

// NewValidator creates a new Validator.
func NewValidator(params NewRepositoryParams) (Validator, error) {
	params, err := params.withDefaults()
	if err != nil {
		return nil, err
	}
	return &realValidator{params: params}, nil
}
