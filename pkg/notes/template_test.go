//go:build unit

package notes_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lerenn/project-init/configs"
	fsmocks "github.com/lerenn/project-init/pkg/fs/mocks"
	"github.com/lerenn/project-init/pkg/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var templateNow = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }

func TestTemplateFileName(t *testing.T) {
	assert.Equal(t, "2025-03-14-acme-forecast-notes.md", notes.TemplateFileName("Acme Forecast", templateNow()))
	assert.Equal(t, "2025-03-14-my-project-notes.md", notes.TemplateFileName("", templateNow()))
	assert.Equal(t, "2025-03-14-my-project-notes.md", notes.TemplateFileName("!!!", templateNow()))
}

func TestWriteTemplate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	want := filepath.Join("inputs", "2025-03-14-acme-notes.md")

	mockFS.EXPECT().Exists(want).Return(false, nil)
	mockFS.EXPECT().MkdirAll("inputs", os.FileMode(0755)).Return(nil)
	mockFS.EXPECT().WriteFileAtomic(want, configs.NotesTemplate, os.FileMode(0644)).Return(nil)

	path, err := notes.WriteTemplate(notes.WriteTemplateParams{FS: mockFS, Dir: "inputs", Name: "acme", Now: templateNow})
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestWriteTemplate_ExistingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists(gomock.Any()).Return(true, nil)

	_, err := notes.WriteTemplate(notes.WriteTemplateParams{FS: mockFS, Dir: "inputs", Name: "acme", Now: templateNow})
	assert.ErrorIs(t, err, notes.ErrTemplateExists)
}

func TestWriteTemplate_ForceOverwrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists(gomock.Any()).Return(true, nil)
	mockFS.EXPECT().MkdirAll("inputs", gomock.Any()).Return(nil)
	mockFS.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := notes.WriteTemplate(notes.WriteTemplateParams{
		FS: mockFS, Dir: "inputs", Name: "acme", Force: true, Now: templateNow,
	})
	assert.NoError(t, err)
}

func TestWriteTemplate_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists(gomock.Any()).Return(false, nil)
	mockFS.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	mockFS.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := notes.WriteTemplate(notes.WriteTemplateParams{FS: mockFS, Dir: "inputs", Now: templateNow})
	assert.ErrorIs(t, err, notes.ErrTemplateWrite)
}

func TestWriteTemplate_MissingFS(t *testing.T) {
	_, err := notes.WriteTemplate(notes.WriteTemplateParams{Dir: "inputs"})
	assert.ErrorIs(t, err, notes.ErrFSMissing)
}
