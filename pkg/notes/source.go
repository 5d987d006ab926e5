package notes

import "github.com/lerenn/project-init/pkg/answers"

type fileSource struct {
	parser Parser
	path   string
}

// NewSource returns an answers.Source reading the notes file at path.
func NewSource(parser Parser, path string) answers.Source {
	return &fileSource{parser: parser, path: path}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Collect() (answers.Answers, error) {
	return s.parser.Parse(s.path)
}
