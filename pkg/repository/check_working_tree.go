package repository

import (
	"fmt"
	"strings"
)

// CheckWorkingTree checks that `git status --porcelain` reports nothing.
// If the query cannot run, the tree is reported dirty and the failure is kept as Cause.
func (v *realValidator) CheckWorkingTree() ValidationResult {
	v.params.Logger.Debugf("Checking if working tree is clean...")

	status, err := v.params.Git.StatusPorcelain(v.params.RepositoryPath)
	if err != nil {
		v.params.Logger.Warnf("Error checking working tree status: %v", err)
		return ValidationResult{
			Outcome: OutcomeDirtyWorkingTree,
			Message: "working tree state could not be confirmed",
			Cause:   err,
		}
	}

	paths := porcelainEntries(status)
	if len(paths) > 0 {
		v.params.Logger.Errorf("Working tree has uncommitted changes: %s", strings.Join(paths, ", "))
		return ValidationResult{
			Outcome: OutcomeDirtyWorkingTree,
			Message: fmt.Sprintf("working tree has uncommitted changes (%d paths)", len(paths)),
			Paths:   paths,
		}
	}

	v.params.Logger.Infof("Working tree is clean.")
	return ok()
}

func porcelainEntries(status string) []string {
	var entries []string
	for _, line := range strings.Split(status, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, strings.TrimRight(line, "\r"))
	}
	return entries
}
