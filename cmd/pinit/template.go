package main

import (
	"path/filepath"
	"strings"

	"github.com/lerenn/project-init/pkg/notes"
	"github.com/spf13/cobra"
)

var templateForce bool

func createTemplateCmd() *cobra.Command {
	templateCmd := &cobra.Command{
		Use:   "template [project name]",
		Short: "Write an empty notes file to fill in",
		Long: `Write the notes template into the input directory as ` +
			`<date>-<project>-notes.md. Fill it in, then run pinit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := notes.DefaultTemplateName
			if len(args) == 1 {
				name = args[0]
			}
			return writeTemplate(name)
		},
	}
	templateCmd.Flags().BoolVarP(&templateForce, "force", "f", false, "Overwrite an existing notes file")
	return templateCmd
}

func writeTemplate(name string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	pi, err := a.projectInit()
	if err != nil {
		return err
	}
	path, err := pi.WriteNotesTemplate(name, templateForce)
	if err != nil {
		return err
	}
	a.deps.Console.Success("Notes template written to: %s", path)
	if insideRepository(path) {
		a.deps.Console.Warning("The notes file is inside the repository: commit or ignore it before running pinit")
	}
	a.deps.Console.Hint("Fill in the sections, then run: pinit --input %s", path)
	return nil
}

// insideRepository reports whether path lies under --repo. Such a file makes the
// working tree dirty until it is committed or ignored.
func insideRepository(path string) bool {
	repo, err := filepath.Abs(repoPath)
	if err != nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(repo, abs)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
