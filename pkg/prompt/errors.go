// Package prompt provides interactive prompt functionality for pinit.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInputClosed     = errors.New("input closed before an answer was given")
	ErrNoChoices       = errors.New("no choices available")
	ErrNoSelection     = errors.New("no selection made")
	ErrUnexpectedModel = errors.New("unexpected model type")
)
