package notes

import (
	"github.com/lerenn/project-init/pkg/answers"
	"github.com/lerenn/project-init/pkg/fs"
	"github.com/lerenn/project-init/pkg/logger"
)

// Section header texts, lower-cased, and the answer key each one fills.
var headerToKey = map[string]string{
	"client name":        "client_name",
	"project name":       answers.KeyProjectName,
	"primary goal":       "primary_goal",
	"success metrics":    "success_metrics",
	"data sources":       "data_sources",
	"known constraints":  "known_constraints",
	"additional context": "additional_context",
}

// Parser reads notes files.
type Parser interface {
	// Parse reads the notes at path. Every known key is present in the result.
	Parse(path string) (answers.Answers, error)
}

// NewParserParams contains parameters for creating a new Parser.
type NewParserParams struct {
	FS     fs.FS
	Logger logger.Logger
}

type realParser struct {
	fs     fs.FS
	logger logger.Logger
}

// NewParser creates a new Parser.
func NewParser(params NewParserParams) (Parser, error) {
	if params.FS == nil {
		return nil, ErrFSMissing
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	return &realParser{fs: params.FS, logger: params.Logger}, nil
}

