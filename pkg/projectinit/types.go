package projectinit

import (
	"github.com/lerenn/project-init/pkg/answers"
	"github.com/lerenn/project-init/pkg/git"
	"github.com/lerenn/project-init/pkg/workflow"
)

// RunParams contains parameters for Run.
type RunParams struct {
	Source answers.Source
	// SkipBranch writes the manifest without touching the repository.
	SkipBranch bool
	// Commit commits the manifest onto the new branch. Ignored with SkipBranch.
	Commit bool
}

// NotesParams selects the notes file of a run.
type NotesParams struct {
	// Input is an explicit notes path. It takes precedence over discovery.
	Input string
	// Select asks the user to pick among the notes files instead of using the newest.
	Select bool
}

// Summary reports what a run did. It is returned even when the run fails, filled up to
// the failing step.
type Summary struct {
	RunID        string
	Source       string
	ProjectName  string
	Slug         string
	Branch       string
	Answers      answers.Answers
	Workflow     workflow.Result
	ManifestPath string
	Committed    bool
	Head         git.HeadInfo
}

// BranchCreated reports whether the repository was moved onto the new branch.
func (s Summary) BranchCreated() bool {
	return s.Workflow.Succeeded()
}
