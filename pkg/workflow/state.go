package workflow

import (
	"fmt"

	"github.com/lerenn/project-init/pkg/git"
	"github.com/lerenn/project-init/pkg/repository"
)

// State is a step of the branch preparation.
type State int

// Workflow states. Done and Failed are terminal.
const (
	StateStart State = iota
	StateCheckingRepo
	StateCheckingTree
	StateCheckingBranch
	StateCreating
	StateDone
	StateFailed
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateCheckingRepo:
		return "CheckingRepo"
	case StateCheckingTree:
		return "CheckingTree"
	case StateCheckingBranch:
		return "CheckingBranch"
	case StateCreating:
		return "Creating"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result describes how far a run went.
type Result struct {
	Branch string
	// State is the terminal state reached.
	State State
	// Trail lists every visited state, State included.
	Trail []State
	// Reason is the failure kind when State is StateFailed.
	Reason git.Kind
	// Validation is the failing check result, if a check failed.
	Validation repository.ValidationResult
}

// Succeeded reports whether the branch was created and checked out.
func (r Result) Succeeded() bool {
	return r.State == StateDone
}

func (r *Result) enter(s State) {
	r.State = s
	r.Trail = append(r.Trail, s)
}
