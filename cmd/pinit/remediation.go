package main

import (
	"errors"
	"io"

	"github.com/lerenn/project-init/pkg/console"
	"github.com/lerenn/project-init/pkg/git"
	"github.com/lerenn/project-init/pkg/notes"
	"github.com/lerenn/project-init/pkg/projectinit"
	"github.com/lerenn/project-init/pkg/prompt"
	"github.com/lerenn/project-init/pkg/questionnaire"
)

// Exit codes returned by pinit.
const (
	ExitOK                 = 0
	ExitFailure            = 1
	ExitInput              = 2
	ExitNotARepository     = 3
	ExitDirtyWorkingTree   = 4
	ExitBranchExists       = 5
	ExitToolingUnavailable = 6
	ExitGitError           = 7
)

// remediation is what pinit tells the user after a failure.
type remediation struct {
	Code int
	Hint string
}

var (
	remediationNotARepository = remediation{
		Code: ExitNotARepository,
		Hint: "Run pinit inside a Git repository or point --repo at one. `git init` creates a new repository.",
	}
	remediationDirtyWorkingTree = remediation{
		Code: ExitDirtyWorkingTree,
		Hint: "Commit or stash your changes (`git stash --include-untracked`), then run pinit again.",
	}
	remediationBranchExists = remediation{
		Code: ExitBranchExists,
		Hint: "Switch to the existing branch with `git switch`, or use another project name.",
	}
	remediationToolingUnavailable = remediation{
		Code: ExitToolingUnavailable,
		Hint: "Install Git and make sure the git executable is in your PATH.",
	}
	remediationGitError = remediation{
		Code: ExitGitError,
		Hint: "Check the Git error above and the debug log, then run pinit again.",
	}
	remediationInput = remediation{
		Code: ExitInput,
		Hint: "Write the notes from the template (`pinit template`) or pass an existing file with --input.",
	}
	remediationConfig = remediation{
		Code: ExitFailure,
		Hint: "Fix the configuration file, or regenerate it with `pinit config init --force`.",
	}
	remediationOther = remediation{
		Code: ExitFailure,
		Hint: "See the debug log for details.",
	}
)

// inputErrors are the failures caused by the notes or the answers given.
var inputErrors = []error{
	projectinit.ErrAnswers,
	projectinit.ErrNotesDiscovery,
	notes.ErrNotesNotFound,
	notes.ErrNoContent,
	notes.ErrRead,
	notes.ErrTemplateExists,
	prompt.ErrInputClosed,
	prompt.ErrNoChoices,
	prompt.ErrNoSelection,
	questionnaire.ErrQuestionnaireInput,
}

// remediate maps err to its exit code and hint. Git kinds win over the wrapping step.
func remediate(err error) remediation {
	switch git.KindOf(err) {
	case git.KindNotARepository:
		return remediationNotARepository
	case git.KindDirtyWorkingTree:
		return remediationDirtyWorkingTree
	case git.KindBranchExists:
		return remediationBranchExists
	case git.KindToolingUnavailable:
		return remediationToolingUnavailable
	case git.KindCommandFailed, git.KindBranchCreation:
		return remediationGitError
	}

	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return remediationInput
		}
	}
	if errors.Is(err, ErrFailedToLoadConfig) {
		return remediationConfig
	}
	return remediationOther
}

// report prints err and its remediation to w and returns the exit code.
func report(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	r := remediate(err)
	c := console.NewConsoleWithWriter(w)
	c.Failure("%v", err)
	c.Hint("%s", r.Hint)
	return r.Code
}
