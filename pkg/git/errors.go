// Package git provides Git operations and error definitions.
package git

import (
	"errors"
	"strings"
)

// Kind identifies a class of Git failure that callers can branch on.
type Kind int

// Git failure kinds.
const (
	KindUnknown Kind = iota
	// KindNotARepository means the working directory is not inside a Git repository.
	KindNotARepository
	// KindDirtyWorkingTree means the working tree has staged, unstaged or untracked changes.
	KindDirtyWorkingTree
	// KindBranchExists means the requested branch already exists as a local ref.
	KindBranchExists
	// KindToolingUnavailable means the git executable could not be located.
	KindToolingUnavailable
	// KindCommandFailed means a git command ran and exited with a non-zero status.
	KindCommandFailed
	// KindBranchCreation means the create-and-switch mutation failed.
	KindBranchCreation
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotARepository:
		return "not a repository"
	case KindDirtyWorkingTree:
		return "dirty working tree"
	case KindBranchExists:
		return "branch already exists"
	case KindToolingUnavailable:
		return "git unavailable"
	case KindCommandFailed:
		return "git command failed"
	case KindBranchCreation:
		return "branch creation failed"
	default:
		return "unknown"
	}
}

// Sentinels matching each Kind, for use with errors.Is.
var (
	ErrNotARepository     = &Error{Kind: KindNotARepository, Message: "not a Git repository"}
	ErrDirtyWorkingTree   = &Error{Kind: KindDirtyWorkingTree, Message: "working tree has uncommitted changes"}
	ErrBranchExists       = &Error{Kind: KindBranchExists, Message: "branch already exists"}
	ErrToolingUnavailable = &Error{Kind: KindToolingUnavailable, Message: "git is not installed or not found in PATH"}
	ErrCommandFailed      = &Error{Kind: KindCommandFailed, Message: "git command failed"}
	ErrBranchCreation     = &Error{Kind: KindBranchCreation, Message: "failed to create branch"}
)

// Error is a Git failure carrying its kind and the original diagnostic message.
type Error struct {
	Kind    Kind
	Args    []string // git arguments of the command involved, if any
	Message string   // diagnostic text, usually the command's trimmed stderr
	Err     error    // underlying error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Message == "" {
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error found in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
