package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DescribeHead reads the branch and commit HEAD points at without running git.
func (g *realGit) DescribeHead(repoPath string) (HeadInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return HeadInfo{}, &Error{Kind: KindNotARepository, Message: ErrNotARepository.Message, Err: err}
		}
		return HeadInfo{}, fmt.Errorf("failed to open repository: %w", err)
	}

	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return HeadInfo{}, fmt.Errorf("failed to read HEAD: %w", err)
	}

	var info HeadInfo
	if ref.Type() == plumbing.SymbolicReference {
		info.Branch = ref.Target().Short()
	}

	resolved, err := repo.Head()
	switch {
	case err == nil:
		info.Commit = resolved.Hash().String()
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// unborn branch, nothing committed yet
	default:
		return HeadInfo{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	return info, nil
}
