package workflow

import (
	"github.com/lerenn/project-init/pkg/branch"
	"github.com/lerenn/project-init/pkg/git"
	"github.com/lerenn/project-init/pkg/repository"
)

var checkStates = map[repository.Check]State{
	repository.CheckRepositoryExists: StateCheckingRepo,
	repository.CheckWorkingTreeClean: StateCheckingTree,
	repository.CheckBranchMissing:    StateCheckingBranch,
}

// PrepareProjectBranch walks Start, CheckingRepo, CheckingTree, CheckingBranch, Creating and Done.
// The first failing step moves the run to Failed and its error is returned as is.
func (o *realOrchestrator) PrepareProjectBranch(branchName string) (Result, error) {
	result := Result{Branch: branchName}
	result.enter(StateStart)

	if branchName == "" {
		return o.fail(&result, git.KindUnknown, branch.ErrBranchNameEmpty)
	}
	o.logger.Infof("Preparing branch '%s'", branchName)

	validation := o.validator.Validate(branchName, func(check repository.Check) {
		state := checkStates[check]
		result.enter(state)
		o.logger.Debugf("Workflow state: %s", state)
	})
	if !validation.OK() {
		result.Validation = validation
		err := validation.Err()
		return o.fail(&result, git.KindOf(err), err)
	}

	result.enter(StateCreating)
	o.logger.Debugf("Workflow state: %s", StateCreating)
	if err := o.creator.CreateAndSwitch(branchName); err != nil {
		if git.KindOf(err) != git.KindBranchCreation {
			err = &git.Error{Kind: git.KindBranchCreation, Message: err.Error(), Err: err}
		}
		return o.fail(&result, git.KindBranchCreation, err)
	}

	result.enter(StateDone)
	o.logger.Infof("Branch '%s' is ready", branchName)
	return result, nil
}

func (o *realOrchestrator) fail(result *Result, reason git.Kind, err error) (Result, error) {
	result.Reason = reason
	result.enter(StateFailed)
	o.logger.Errorf("Workflow failed in state %s: %v", result.Trail[len(result.Trail)-2], err)
	return *result, err
}
