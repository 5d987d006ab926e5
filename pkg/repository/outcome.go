package repository

import (
	"fmt"

	"github.com/lerenn/project-init/pkg/git"
)

// Outcome is the result class of a precondition check.
type Outcome int

// Validation outcomes.
const (
	OutcomeOK Outcome = iota
	OutcomeNotARepository
	OutcomeDirtyWorkingTree
	OutcomeBranchAlreadyExists
	OutcomeToolingUnavailable
	OutcomeOtherFailure
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotARepository:
		return "not a repository"
	case OutcomeDirtyWorkingTree:
		return "dirty working tree"
	case OutcomeBranchAlreadyExists:
		return "branch already exists"
	case OutcomeToolingUnavailable:
		return "tooling unavailable"
	case OutcomeOtherFailure:
		return "other failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ValidationResult is what a precondition check reports.
type ValidationResult struct {
	Outcome Outcome
	// Message describes the failure. Empty when Outcome is OutcomeOK.
	Message string
	// Paths lists the porcelain entries that made the working tree dirty.
	Paths []string
	// Cause is the lower-level error behind the outcome, if any. A dirty outcome with
	// a cause means the status query itself failed.
	Cause error
}

// OK reports whether the check passed.
func (r ValidationResult) OK() bool {
	return r.Outcome == OutcomeOK
}

// Err converts a failing result into a *git.Error of the matching kind.
func (r ValidationResult) Err() error {
	var kind git.Kind
	switch r.Outcome {
	case OutcomeOK:
		return nil
	case OutcomeNotARepository:
		kind = git.KindNotARepository
	case OutcomeDirtyWorkingTree:
		kind = git.KindDirtyWorkingTree
	case OutcomeBranchAlreadyExists:
		kind = git.KindBranchExists
	case OutcomeToolingUnavailable:
		kind = git.KindToolingUnavailable
	default:
		kind = git.KindCommandFailed
	}
	return &git.Error{Kind: kind, Message: r.Message, Err: r.Cause}
}

func ok() ValidationResult {
	return ValidationResult{Outcome: OutcomeOK}
}
