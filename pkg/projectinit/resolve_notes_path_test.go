//go:build unit

package projectinit_test

import (
	"testing"
	"time"

	"github.com/lerenn/project-init/pkg/fs"
	"github.com/lerenn/project-init/pkg/prompt"
	"github.com/lerenn/project-init/pkg/projectinit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveNotesPath_Explicit(t *testing.T) {
	f := newFixture(t)

	path, err := f.pi.ResolveNotesPath(projectinit.NotesParams{Input: "meeting.md", Select: true})
	require.NoError(t, err)
	assert.Equal(t, "meeting.md", path)
}

func TestResolveNotesPath_Latest(t *testing.T) {
	f := newFixture(t)
	f.fs.EXPECT().LatestFile("inputs", "*.md").Return("inputs/newest.md", nil)

	path, err := f.pi.ResolveNotesPath(projectinit.NotesParams{})
	require.NoError(t, err)
	assert.Equal(t, "inputs/newest.md", path)
}

func TestResolveNotesPath_NoNotes(t *testing.T) {
	f := newFixture(t)
	f.fs.EXPECT().LatestFile("inputs", "*.md").Return("", fs.ErrNoMatchingFile)

	_, err := f.pi.ResolveNotesPath(projectinit.NotesParams{})
	assert.ErrorIs(t, err, projectinit.ErrNotesDiscovery)
	assert.ErrorIs(t, err, fs.ErrNoMatchingFile)
}

func TestResolveNotesPath_Select(t *testing.T) {
	f := newFixture(t)
	modTime := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	f.fs.EXPECT().ListFiles("inputs", "*.md").Return([]fs.FileInfo{
		{Path: "inputs/b.md", Name: "b.md", ModTime: modTime},
		{Path: "inputs/a.md", Name: "a.md", ModTime: modTime.Add(-time.Hour)},
	}, nil)
	f.prompt.EXPECT().PromptSelectFile([]prompt.FileChoice{
		{Path: "inputs/b.md", Name: "b.md", Detail: "2024-03-02 10:00"},
		{Path: "inputs/a.md", Name: "a.md", Detail: "2024-03-02 09:00"},
	}).Return(prompt.FileChoice{Path: "inputs/a.md"}, nil)

	path, err := f.pi.ResolveNotesPath(projectinit.NotesParams{Select: true})
	require.NoError(t, err)
	assert.Equal(t, "inputs/a.md", path)
}

func TestResolveNotesPath_SelectEmpty(t *testing.T) {
	f := newFixture(t)
	f.fs.EXPECT().ListFiles("inputs", "*.md").Return(nil, nil)

	_, err := f.pi.ResolveNotesPath(projectinit.NotesParams{Select: true})
	assert.ErrorIs(t, err, projectinit.ErrNotesDiscovery)
}

func TestResolveNotesPath_SelectCancelled(t *testing.T) {
	f := newFixture(t)
	f.fs.EXPECT().ListFiles("inputs", "*.md").Return([]fs.FileInfo{{Path: "inputs/a.md"}}, nil)
	f.prompt.EXPECT().PromptSelectFile(gomock.Any()).Return(prompt.FileChoice{}, prompt.ErrNoSelection)

	_, err := f.pi.ResolveNotesPath(projectinit.NotesParams{Select: true})
	assert.ErrorIs(t, err, prompt.ErrNoSelection)
}
