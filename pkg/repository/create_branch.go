package repository

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=create_branch.go -destination=mocks/branch_creator.gen.go -package=mocks

// BranchCreator performs the only mutating step: create a branch at HEAD and switch to it.
type BranchCreator interface {
	CreateAndSwitch(branch string) error
}

type realBranchCreator struct {
	params NewRepositoryParams
}

// NewBranchCreator creates a new BranchCreator.
func NewBranchCreator(params NewRepositoryParams) (BranchCreator, error) {
	params, err := params.withDefaults()
	if err != nil {
		return nil, err
	}
	return &realBranchCreator{params: params}, nil
}

// CreateAndSwitch creates branch and checks it out. Failures carry git.KindBranchCreation;
// there is no retry and no undo.
func (c *realBranchCreator) CreateAndSwitch(branch string) error {
	c.params.Logger.Debugf("Creating and switching to branch '%s'...", branch)

	if err := c.params.Git.CheckoutNewBranch(c.params.RepositoryPath, branch); err != nil {
		c.params.Logger.Errorf("Failed to create branch '%s': %v", branch, err)
		return err
	}

	c.params.Logger.Infof("Successfully created and switched to branch '%s'.", branch)
	return nil
}
