// Package manifest writes the project answers as a JSON manifest.
package manifest

import (
	"github.com/lerenn/project-init/pkg/answers"
	"github.com/lerenn/project-init/pkg/fs"
	"github.com/lerenn/project-init/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manifest.go -destination=mocks/manifest.gen.go -package=mocks

// FileSuffix is appended to the project slug to name the manifest.
const FileSuffix = "_manifest.json"

// Writer writes manifests.
type Writer interface {
	// Write stores a as <outputDir>/<slug>_manifest.json and returns the file path.
	Write(outputDir, slug string, a answers.Answers) (string, error)
}

// NewWriterParams contains parameters for creating a new Writer.
type NewWriterParams struct {
	FS     fs.FS
	Logger logger.Logger
}

type realWriter struct {
	fs     fs.FS
	logger logger.Logger
}

// NewWriter creates a new Writer.
func NewWriter(params NewWriterParams) (Writer, error) {
	if params.FS == nil {
		return nil, ErrFSMissing
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	return &realWriter{fs: params.FS, logger: params.Logger}, nil
}
