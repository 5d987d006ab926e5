package notes

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/lerenn/project-init/configs"
	"github.com/lerenn/project-init/pkg/branch"
	"github.com/lerenn/project-init/pkg/fs"
)

// DefaultTemplateName names template files written without a name.
const DefaultTemplateName = "my-project"

// WriteTemplateParams contains parameters for WriteTemplate.
type WriteTemplateParams struct {
	FS  fs.FS
	Dir string
	// Name is slugified into the file name, e.g. 2025-01-31-my-project-notes.md.
	Name  string
	Force bool
	Now   func() time.Time
}

// TemplateFileName returns the notes file name for name, dated with now.
func TemplateFileName(name string, now time.Time) string {
	slug := branch.Slugify(name)
	if slug == "" {
		slug = DefaultTemplateName
	}
	return fmt.Sprintf("%s-%s-notes.md", now.Format("2006-01-02"), slug)
}

// WriteTemplate writes the notes template into params.Dir and returns its path.
func WriteTemplate(params WriteTemplateParams) (string, error) {
	if params.FS == nil {
		return "", ErrFSMissing
	}
	if params.Now == nil {
		params.Now = time.Now
	}

	path := filepath.Join(params.Dir, TemplateFileName(params.Name, params.Now()))
	exists, err := params.FS.Exists(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateWrite, err)
	}
	if exists && !params.Force {
		return "", fmt.Errorf("%w: %s", ErrTemplateExists, path)
	}

	if err := params.FS.MkdirAll(params.Dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateWrite, err)
	}
	if err := params.FS.WriteFileAtomic(path, configs.NotesTemplate, 0644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateWrite, err)
	}
	return path, nil
}
