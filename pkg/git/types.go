package git

// HeadInfo describes what HEAD points at.
type HeadInfo struct {
	// Branch is the short branch name, empty when HEAD is detached.
	Branch string
	// Commit is the full hash of the commit HEAD resolves to, empty on an unborn branch.
	Commit string
}

// ShortCommit returns the first seven characters of the commit hash.
func (h HeadInfo) ShortCommit() string {
	if len(h.Commit) <= 7 {
		return h.Commit
	}
	return h.Commit[:7]
}
