// Package questionnaire asks the project questions interactively.
package questionnaire

import "errors"

// Error definitions for questionnaire package.
var (
	ErrQuestionsParse     = errors.New("failed to parse questions")
	ErrNoQuestions        = errors.New("questionnaire has no questions")
	ErrInvalidQuestion    = errors.New("invalid question")
	ErrPrompterMissing    = errors.New("prompter dependency is required but not set")
	ErrQuestionnaireInput = errors.New("failed to read answer")
)
