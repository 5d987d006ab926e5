package main

import (
	"github.com/lerenn/project-init/pkg/answers"
	"github.com/lerenn/project-init/pkg/projectinit"
	"github.com/spf13/cobra"
)

func createAskCmd() *cobra.Command {
	askCmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer the project questions interactively",
		Long: `Ask the project questions one by one instead of reading meeting notes, ` +
			`then create the project branch and manifest from the answers.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit("🎯 Project initialization questionnaire", func(pi projectinit.ProjectInit) (answers.Source, error) {
				return pi.QuestionnaireSource()
			})
		},
	}
	addRunFlags(askCmd)
	return askCmd
}
