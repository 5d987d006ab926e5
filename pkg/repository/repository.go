// Package repository checks that a Git repository is ready for a new project branch
// and creates that branch.
package repository

import (
	"github.com/lerenn/project-init/pkg/git"
	"github.com/lerenn/project-init/pkg/logger"
)

// NewRepositoryParams contains parameters for creating a Validator or a BranchCreator.
type NewRepositoryParams struct {
	Git            git.Git
	Logger         logger.Logger
	RepositoryPath string
}

func (p NewRepositoryParams) withDefaults() (NewRepositoryParams, error) {
	if p.Git == nil {
		return p, ErrGitMissing
	}
	if p.Logger == nil {
		p.Logger = logger.NewNoopLogger()
	}
	if p.RepositoryPath == "" {
		p.RepositoryPath = "."
	}
	return p, nil
}
