package projectinit

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/project-init/pkg/fs"
	"github.com/lerenn/project-init/pkg/prompt"
)

const notesTimeLayout = "2006-01-02 15:04"

// ResolveNotesPath returns params.Input when set, otherwise the newest notes file in
// the input directory, or the one the user selects.
func (p *realProjectInit) ResolveNotesPath(params NotesParams) (string, error) {
	if params.Input != "" {
		p.deps.Logger.Infof("Using specified notes file: %s", params.Input)
		return params.Input, nil
	}

	inputDir := p.config.InputDir
	pattern := p.config.NotesPattern
	p.deps.Logger.Debugf("Searching for notes files matching %s in %s", pattern, inputDir)

	if !params.Select {
		path, err := p.deps.FS.LatestFile(inputDir, pattern)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNotesDiscovery, err)
		}
		p.deps.Logger.Infof("Using most recent notes file: %s", path)
		return path, nil
	}

	files, err := p.deps.FS.ListFiles(inputDir, pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotesDiscovery, err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w: %w: no %s in %s", ErrNotesDiscovery, fs.ErrNoMatchingFile, pattern, inputDir)
	}

	choices := make([]prompt.FileChoice, 0, len(files))
	for _, f := range files {
		choices = append(choices, prompt.FileChoice{
			Path:   f.Path,
			Name:   filepath.Base(f.Path),
			Detail: f.ModTime.Format(notesTimeLayout),
		})
	}
	choice, err := p.deps.Prompt.PromptSelectFile(choices)
	if err != nil {
		return "", err
	}
	p.deps.Logger.Infof("Using selected notes file: %s", choice.Path)
	return choice.Path, nil
}
