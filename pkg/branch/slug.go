package branch

import (
	"strings"
	"unicode"
)

// DefaultPrefix is the namespace project branches are created under.
const DefaultPrefix = "project/"

// Slugify converts a human-entered name into a lower-case, file-safe slug.
// Letters, digits, spaces, dashes and underscores are kept and everything else is
// dropped. Trailing spaces are removed, then the remaining spaces become dashes, so a
// name starting with a space or a dropped symbol yields a leading dash.
func Slugify(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	slug := strings.TrimRight(b.String(), " ")
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.ToLower(slug)
}

// ProjectBranch returns the sanitized branch name <prefix><slug>.
func ProjectBranch(prefix, slug string) (string, error) {
	if slug == "" {
		return "", ErrBranchNameEmpty
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return SanitizeBranchName(prefix + slug)
}
