//go:build unit

package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/project-init/pkg/answers"
	fsmocks "github.com/lerenn/project-init/pkg/fs/mocks"
	"github.com/lerenn/project-init/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWriter_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	w, err := manifest.NewWriter(manifest.NewWriterParams{FS: mockFS})
	require.NoError(t, err)

	expectedPath := filepath.Join("outputs", "acme-forecast_manifest.json")
	expectedJSON := "{\n" +
		"    \"client_name\": \"Acme & Co\",\n" +
		"    \"primary_goal\": \"Forecast demand\\nper store\",\n" +
		"    \"project_name\": \"Acme Forecast\"\n" +
		"}\n"

	mockFS.EXPECT().Exists("outputs").Return(true, nil)
	mockFS.EXPECT().IsDir("outputs").Return(true, nil)
	mockFS.EXPECT().WriteFileAtomic(expectedPath, []byte(expectedJSON), os.FileMode(0644)).Return(nil)

	path, err := w.Write("outputs", "acme-forecast", answers.Answers{
		"project_name": "Acme Forecast",
		"client_name":  "Acme & Co",
		"primary_goal": "Forecast demand\nper store",
	})
	require.NoError(t, err)
	assert.Equal(t, expectedPath, path)
}

func TestWriter_Write_CreatesMissingOutputDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	w, err := manifest.NewWriter(manifest.NewWriterParams{FS: mockFS})
	require.NoError(t, err)

	mockFS.EXPECT().Exists("outputs").Return(false, nil)
	mockFS.EXPECT().WriteFileAtomic(filepath.Join("outputs", "x_manifest.json"), []byte("{}\n"), os.FileMode(0644)).Return(nil)

	_, err = w.Write("outputs", "x", nil)
	assert.NoError(t, err)
}

func TestWriter_Write_Errors(t *testing.T) {
	t.Run("empty slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w, err := manifest.NewWriter(manifest.NewWriterParams{FS: fsmocks.NewMockFS(ctrl)})
		require.NoError(t, err)

		_, err = w.Write("outputs", "", answers.Answers{})
		assert.ErrorIs(t, err, manifest.ErrSlugEmpty)
	})

	t.Run("output dir is a file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := fsmocks.NewMockFS(ctrl)
		w, err := manifest.NewWriter(manifest.NewWriterParams{FS: mockFS})
		require.NoError(t, err)

		mockFS.EXPECT().Exists("outputs").Return(true, nil)
		mockFS.EXPECT().IsDir("outputs").Return(false, nil)

		_, err = w.Write("outputs", "acme", answers.Answers{})
		assert.ErrorIs(t, err, manifest.ErrOutputPath)
	})

	t.Run("write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := fsmocks.NewMockFS(ctrl)
		w, err := manifest.NewWriter(manifest.NewWriterParams{FS: mockFS})
		require.NoError(t, err)

		mockFS.EXPECT().Exists("outputs").Return(false, nil)
		mockFS.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err = w.Write("outputs", "acme", answers.Answers{})
		assert.ErrorIs(t, err, manifest.ErrWrite)
	})
}

func TestNewWriter_RequiresFS(t *testing.T) {
	_, err := manifest.NewWriter(manifest.NewWriterParams{})
	assert.ErrorIs(t, err, manifest.ErrFSMissing)
}
