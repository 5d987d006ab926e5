// Package branch builds project slugs and Git-safe branch names.
package branch

import (
	"regexp"
	"strings"
)

// ErrBranchNameEmpty is returned when the branch name is empty.
var ErrBranchNameEmpty = &Error{message: "branch name cannot be empty"}

// ErrBranchNameSingleAt is returned when the branch name is just a single @ character.
var ErrBranchNameSingleAt = &Error{message: "branch name cannot be the single character @"}

// ErrBranchNameContainsAtBrace is returned when the branch name contains the sequence @{.
var ErrBranchNameContainsAtBrace = &Error{message: "branch name cannot contain the sequence @{"}

// ErrBranchNameContainsBackslash is returned when the branch name contains a backslash.
var ErrBranchNameContainsBackslash = &Error{message: "branch name cannot contain backslash"}

// ErrBranchNameEmptyAfterSanitization is returned when the branch name becomes empty after sanitization.
var ErrBranchNameEmptyAfterSanitization = &Error{message: "branch name becomes empty after sanitization"}

// Error represents an error related to branch naming.
type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}

var (
	invalidChars       = regexp.MustCompile(`[\x00-\x1F\x7F ~^:?*\[\]#]`)
	consecutiveDots    = regexp.MustCompile(`\.\.+`)
	consecutiveSlashes = regexp.MustCompile(`/+`)
)

const maxBranchNameLength = 255

// SanitizeBranchName sanitizes a branch name according to Git's ref naming rules:
//   - no ASCII control characters, space, tilde ~, caret ^, colon :, question-mark ?,
//     asterisk * or brackets [ ] anywhere (replaced with _);
//   - no two consecutive dots, no consecutive slashes, no leading or trailing slash or dot;
//   - no slash-separated component beginning with a dot or ending with .lock;
//   - not the single character @, no @{ sequence, no backslash (rejected);
//   - no leading dash.
func SanitizeBranchName(branchName string) (string, error) {
	if branchName == "" {
		return "", ErrBranchNameEmpty
	}

	if branchName == "@" {
		return "", ErrBranchNameSingleAt
	}

	if strings.Contains(branchName, "@{") {
		return "", ErrBranchNameContainsAtBrace
	}

	if strings.Contains(branchName, "\\") {
		return "", ErrBranchNameContainsBackslash
	}

	sanitized := invalidChars.ReplaceAllString(branchName, "_")
	sanitized = consecutiveDots.ReplaceAllString(sanitized, "_")
	sanitized = consecutiveSlashes.ReplaceAllString(sanitized, "/")
	sanitized = sanitizeComponents(sanitized)

	sanitized = strings.Trim(sanitized, "/._")
	sanitized = strings.TrimPrefix(sanitized, "-")

	if len(sanitized) > maxBranchNameLength {
		sanitized = sanitized[:maxBranchNameLength]
		sanitized = strings.TrimRight(sanitized, "._/")
	}

	if sanitized == "" {
		return "", ErrBranchNameEmptyAfterSanitization
	}

	return sanitized, nil
}

// sanitizeComponents fixes slash-separated components that start with a dot or end with .lock.
func sanitizeComponents(name string) string {
	components := strings.Split(name, "/")
	for i, c := range components {
		c = strings.TrimLeft(c, ".")
		for strings.HasSuffix(c, ".lock") {
			c = strings.TrimSuffix(c, ".lock") + "_lock"
		}
		components[i] = c
	}
	return strings.Join(components, "/")
}
