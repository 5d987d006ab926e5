//go:build integration

package main

import (
	"os"
	"strings"
	"path/filepath"
	"testing"

	"github.com/lerenn/project-init/pkg/config"
	"github.com/lerenn/project-init/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acmeNotes = `# Project Notes

## Client Name
Acme Corp

## Project Name
Acme Forecast

## Primary Goal
Forecast weekly demand per store.
`

func setupRun(t *testing.T) (repo, notesPath string) {
	t.Helper()
	t.Cleanup(func() {
		quiet, verbose, configPath, repoPath = false, false, "", "."
		inputPath, selectFile, commit, noBranch = "", false, false, false
		templateForce = false
	})
	t.Setenv("PINIT_LOG_DIR", t.TempDir())

	repo = git.SetupTestRepo(t)
	notesPath = filepath.Join(t.TempDir(), "acme.md")
	require.NoError(t, os.WriteFile(notesPath, []byte(acmeNotes), 0644))
	return repo, notesPath
}

func TestRun_NotesCreateBranchAndCommitManifest(t *testing.T) {
	repo, notesPath := setupRun(t)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "--repo", repo, "--input", notesPath, "--commit"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "project/acme-forecast", git.RunTestGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.FileExists(t, filepath.Join(repo, "outputs", "acme-forecast_manifest.json"))
	assert.Equal(t, "Add project manifest for Acme Forecast", git.RunTestGit(t, repo, "log", "-1", "--format=%s"))
	assert.Empty(t, git.RunTestGit(t, repo, "status", "--porcelain"))
}

func TestRun_DirtyTreeExitCode(t *testing.T) {
	repo, notesPath := setupRun(t)
	git.WriteTestFile(t, repo, "scratch.txt", "work in progress\n")

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "--repo", repo, "--input", notesPath})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitDirtyWorkingTree, remediate(err).Code)
	assert.Equal(t, "main", git.RunTestGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.NoFileExists(t, filepath.Join(repo, "outputs", "acme-forecast_manifest.json"))
}

func TestRun_NotARepositoryExitCode(t *testing.T) {
	_, notesPath := setupRun(t)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "--repo", t.TempDir(), "--input", notesPath})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitNotARepository, remediate(err).Code)
}

func TestRun_NoBranchOnlyWritesManifest(t *testing.T) {
	repo, notesPath := setupRun(t)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "--repo", repo, "--input", notesPath, "--no-branch"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "main", git.RunTestGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.FileExists(t, filepath.Join(repo, "outputs", "acme-forecast_manifest.json"))
}

func TestRun_MissingNotesExitCode(t *testing.T) {
	repo, _ := setupRun(t)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "--repo", repo, "--input", filepath.Join(repo, "missing.md")})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitInput, remediate(err).Code)
}

func TestRun_TemplateThenRunFromRepository(t *testing.T) {
	repo, _ := setupRun(t)
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(repo)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "template", "Acme Forecast"})
	require.NoError(t, rootCmd.Execute())

	written, err := filepath.Glob(filepath.Join(config.DefaultNotesDir(), "*-acme-forecast-notes.md"))
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.False(t, strings.HasPrefix(written[0], repo), written[0])
	assert.Empty(t, git.RunTestGit(t, repo, "status", "--porcelain"))

	require.NoError(t, os.WriteFile(written[0], []byte(acmeNotes), 0644))

	rootCmd = newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "--input", written[0]})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "project/acme-forecast", git.RunTestGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.FileExists(t, filepath.Join(repo, "outputs", "acme-forecast_manifest.json"))
}

func TestRun_TemplateThenDiscoverLatestNotes(t *testing.T) {
	repo, _ := setupRun(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(repo)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "template", "Acme Forecast"})
	require.NoError(t, rootCmd.Execute())

	written, err := filepath.Glob(filepath.Join(config.DefaultNotesDir(), "*.md"))
	require.NoError(t, err)
	require.Len(t, written, 1)
	require.NoError(t, os.WriteFile(written[0], []byte(acmeNotes), 0644))

	rootCmd = newRootCmd()
	rootCmd.SetArgs([]string{"--quiet"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "project/acme-forecast", git.RunTestGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD"))
}

func TestRun_TemplateInsideRepositoryStillBlocksRun(t *testing.T) {
	repo, _ := setupRun(t)
	t.Setenv("PINIT_INPUT_DIR", filepath.Join(repo, "inputs"))
	t.Chdir(repo)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "template", "Acme Forecast"})
	require.NoError(t, rootCmd.Execute())

	written, err := filepath.Glob(filepath.Join(repo, "inputs", "*.md"))
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.True(t, insideRepository(written[0]))
	require.NoError(t, os.WriteFile(written[0], []byte(acmeNotes), 0644))

	rootCmd = newRootCmd()
	rootCmd.SetArgs([]string{"--quiet", "--input", written[0]})
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitDirtyWorkingTree, remediate(err).Code)
}
