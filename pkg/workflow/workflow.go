// Package workflow runs the precondition checks and the branch creation as one state machine.
package workflow

import (
	"github.com/lerenn/project-init/pkg/logger"
	"github.com/lerenn/project-init/pkg/repository"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=workflow.go -destination=mocks/workflow.gen.go -package=mocks

// Orchestrator prepares the branch of a new project.
type Orchestrator interface {
	// PrepareProjectBranch checks the repository and, when every check passes, creates branch
	// and switches to it. The returned Result is filled in on success and on failure.
	PrepareProjectBranch(branch string) (Result, error)
}

// NewOrchestratorParams contains parameters for creating a new Orchestrator.
type NewOrchestratorParams struct {
	Validator     repository.Validator
	BranchCreator repository.BranchCreator
	Logger        logger.Logger
}

type realOrchestrator struct {
	validator repository.Validator
	creator   repository.BranchCreator
	logger    logger.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(params NewOrchestratorParams) (Orchestrator, error) {
	if params.Validator == nil {
		return nil, ErrValidatorMissing
	}
	if params.BranchCreator == nil {
		return nil, ErrBranchCreatorMissing
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	return &realOrchestrator{
		validator: params.Validator,
		creator:   params.BranchCreator,
		logger:    params.Logger,
	}, nil
}
