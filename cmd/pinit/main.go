// Package main provides the command-line interface of pinit.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
	repoPath   string

	inputPath  string
	selectFile bool
	commit     bool
	noBranch   bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pinit",
		Short: "Project Init - bootstrap a project from meeting notes",
		Long: `Parse structured meeting notes (or answer a questionnaire), create a dedicated ` +
			`Git branch for the project and write its JSON manifest.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runNotes()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&repoPath, "repo", ".", "Repository to create the project branch in")

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"Path to the notes file. Defaults to the most recent notes file in the input directory")
	rootCmd.Flags().BoolVar(&selectFile, "select", false, "Pick the notes file interactively")
	addRunFlags(rootCmd)

	rootCmd.AddCommand(createAskCmd(), createConfigCmd(), createTemplateCmd())
	return rootCmd
}

// addRunFlags adds the flags shared by every command that runs an initialization.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&commit, "commit", false, "Commit the manifest onto the new branch")
	cmd.Flags().BoolVar(&noBranch, "no-branch", false, "Only write the manifest, leave the repository untouched")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}
