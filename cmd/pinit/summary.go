package main

import (
	"github.com/lerenn/project-init/pkg/git"
	"github.com/lerenn/project-init/pkg/projectinit"
	"github.com/lerenn/project-init/pkg/repository"
)

func (a *app) printSummary(s projectinit.Summary) {
	c := a.deps.Console
	c.Success("Project manifest saved to: %s", s.ManifestPath)
	c.Table(summaryRows(s, a.log.Path()))
}

// summaryRows lists what a successful run did.
func summaryRows(s projectinit.Summary, logPath string) [][2]string {
	rows := [][2]string{
		{"Project", s.ProjectName},
		{"Source", s.Source},
		{"Manifest", s.ManifestPath},
	}
	if s.BranchCreated() {
		rows = append(rows, [2]string{"Branch", s.Branch})
		if s.Committed {
			rows = append(rows, [2]string{"Committed", "yes"})
		}
		if head := describeHead(s.Head); head != "" {
			rows = append(rows, [2]string{"HEAD", head})
		}
	} else {
		rows = append(rows, [2]string{"Branch", "skipped"})
	}
	rows = append(rows, [2]string{"Run ID", s.RunID})
	if logPath != "" {
		rows = append(rows, [2]string{"Log file", logPath})
	}
	return rows
}

func describeHead(h git.HeadInfo) string {
	commit := h.ShortCommit()
	switch {
	case h.Branch != "" && commit != "":
		return h.Branch + " @ " + commit
	case h.Branch != "":
		return h.Branch
	default:
		return commit
	}
}

// printFailure prints the details of a failed run that the error message alone does not carry.
func (a *app) printFailure(s projectinit.Summary, err error) {
	v := s.Workflow.Validation
	if v.Outcome == repository.OutcomeDirtyWorkingTree {
		if len(v.Paths) > 0 {
			a.errs.Warning("Uncommitted changes:")
			a.errs.List(v.Paths)
		} else if v.Cause != nil {
			a.errs.Warning("Git status could not be read: %v", v.Cause)
		}
	}

	if s.BranchCreated() {
		a.errs.Warning("The repository is now on branch %s, created before the failure.", s.Branch)
	}
	a.deps.Logger.Debugf("Run %s failed: %v", s.RunID, err)
	if path := a.log.Path(); path != "" {
		a.errs.Hint("Debug log: %s", path)
	}
}
