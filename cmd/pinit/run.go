package main

import (
	"github.com/lerenn/project-init/pkg/answers"
	"github.com/lerenn/project-init/pkg/projectinit"
)

// sourceFunc picks the answers source of a run.
type sourceFunc func(pi projectinit.ProjectInit) (answers.Source, error)

// runInit executes one initialization from the source chosen by pick.
func runInit(title string, pick sourceFunc) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.deps.Console.Title(title)
	a.deps.Logger.Debugf("pinit started (repo %s, config %s)", repoPath, a.deps.Config.GetConfigPath())

	pi, err := a.projectInit()
	if err != nil {
		return err
	}
	source, err := pick(pi)
	if err != nil {
		return err
	}

	summary, err := pi.Run(projectinit.RunParams{
		Source:     source,
		SkipBranch: noBranch,
		Commit:     commit || a.config.CommitManifest,
	})
	if err != nil {
		a.printFailure(summary, err)
		return err
	}

	a.printSummary(summary)
	return nil
}

func runNotes() error {
	return runInit("🎯 Project initialization from notes", func(pi projectinit.ProjectInit) (answers.Source, error) {
		path, err := pi.ResolveNotesPath(projectinit.NotesParams{Input: inputPath, Select: selectFile})
		if err != nil {
			return nil, err
		}
		return pi.NotesSource(path)
	})
}
