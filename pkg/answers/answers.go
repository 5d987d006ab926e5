// Package answers holds the flat key/value answers that describe a new project.
package answers

import "strings"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=answers.go -destination=mocks/source.gen.go -package=mocks

// KeyProjectName is the answer key holding the project name.
const KeyProjectName = "project_name"

// Answers maps answer keys to their values.
type Answers map[string]string

// Source produces the answers of one run.
type Source interface {
	// Name describes the source in logs, e.g. the notes file path.
	Name() string
	// Collect gathers the answers.
	Collect() (Answers, error)
}

// ProjectNameOr returns the trimmed project name, or fallback when it is blank.
func (a Answers) ProjectNameOr(fallback string) string {
	if name := strings.TrimSpace(a[KeyProjectName]); name != "" {
		return name
	}
	return fallback
}

// Empty reports whether every value is blank.
func (a Answers) Empty() bool {
	for _, v := range a {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
