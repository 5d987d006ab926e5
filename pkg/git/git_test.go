//go:build unit

package git_test

import (
	"testing"

	"github.com/lerenn/project-init/pkg/git"
	"github.com/lerenn/project-init/pkg/git/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGit_IsRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)
	g := git.NewGitWithRunner(mockRunner)

	mockRunner.EXPECT().Run("/test/repo", "rev-parse", "--git-dir").Return(git.Result{Stdout: ".git\n"}, nil)

	assert.NoError(t, g.IsRepository("/test/repo"))
}

func TestGit_StatusPorcelain(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)
	g := git.NewGitWithRunner(mockRunner)

	mockRunner.EXPECT().Run("/test/repo", "status", "--porcelain").
		Return(git.Result{Stdout: " M README.md\n?? notes.md\n"}, nil)

	status, err := g.StatusPorcelain("/test/repo")
	require.NoError(t, err)
	assert.Equal(t, " M README.md\n?? notes.md\n", status)
}

func TestGit_StatusPorcelain_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)
	g := git.NewGitWithRunner(mockRunner)

	mockRunner.EXPECT().Run("/test/repo", "status", "--porcelain").
		Return(git.Result{ExitCode: 128}, &git.Error{Kind: git.KindCommandFailed, Message: "fatal: not a git repository"})

	_, err := g.StatusPorcelain("/test/repo")
	assert.ErrorIs(t, err, git.ErrCommandFailed)
}

func TestGit_BranchExists(t *testing.T) {
	tests := []struct {
		name        string
		runResult   git.Result
		runErr      error
		expected    bool
		expectedErr error
	}{
		{
			name:     "ref present",
			expected: true,
		},
		{
			name:      "non-zero exit means absent",
			runResult: git.Result{ExitCode: 1},
			runErr:    &git.Error{Kind: git.KindCommandFailed, Message: "git show-ref failed"},
			expected:  false,
		},
		{
			name:        "command that never started propagates",
			runResult:   git.Result{ExitCode: -1},
			runErr:      &git.Error{Kind: git.KindCommandFailed, Message: "git show-ref failed to start"},
			expectedErr: git.ErrCommandFailed,
		},
		{
			name:        "tooling unavailable propagates",
			runErr:      &git.Error{Kind: git.KindToolingUnavailable},
			expectedErr: git.ErrToolingUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRunner := mocks.NewMockRunner(ctrl)
			g := git.NewGitWithRunner(mockRunner)

			mockRunner.EXPECT().
				Run("/test/repo", "show-ref", "--verify", "--quiet", "refs/heads/project/acme-forecast").
				Return(tt.runResult, tt.runErr)

			exists, err := g.BranchExists("/test/repo", "project/acme-forecast")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestGit_CheckoutNewBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)
	g := git.NewGitWithRunner(mockRunner)

	mockRunner.EXPECT().Run("/test/repo", "checkout", "-b", "project/acme-forecast").Return(git.Result{}, nil)

	assert.NoError(t, g.CheckoutNewBranch("/test/repo", "project/acme-forecast"))
}

func TestGit_CheckoutNewBranch_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)
	g := git.NewGitWithRunner(mockRunner)

	cause := &git.Error{Kind: git.KindCommandFailed, Message: "fatal: cannot lock ref 'refs/heads/project/acme'"}
	mockRunner.EXPECT().Run("/test/repo", "checkout", "-b", "project/acme").Return(git.Result{ExitCode: 128}, cause)

	err := g.CheckoutNewBranch("/test/repo", "project/acme")
	require.Error(t, err)
	assert.ErrorIs(t, err, git.ErrBranchCreation)
	assert.Equal(t, git.KindBranchCreation, git.KindOf(err))
	assert.Contains(t, err.Error(), "cannot lock ref")
}

func TestGit_AddAndCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)
	g := git.NewGitWithRunner(mockRunner)

	gomock.InOrder(
		mockRunner.EXPECT().Run("/test/repo", "add", "--", "outputs/acme_manifest.json").Return(git.Result{}, nil),
		mockRunner.EXPECT().Run("/test/repo", "commit", "-m", "Add project manifest").Return(git.Result{}, nil),
	)

	require.NoError(t, g.Add("/test/repo", "outputs/acme_manifest.json"))
	require.NoError(t, g.Commit("/test/repo", "Add project manifest"))
}

func TestGit_Commit_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)
	g := git.NewGitWithRunner(mockRunner)

	mockRunner.EXPECT().Run("/test/repo", "commit", "-m", "msg").
		Return(git.Result{ExitCode: 1}, &git.Error{Kind: git.KindCommandFailed, Message: "nothing to commit"})

	err := g.Commit("/test/repo", "msg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git commit failed")
	assert.Contains(t, err.Error(), "nothing to commit")
}

func TestHeadInfo_ShortCommit(t *testing.T) {
	assert.Equal(t, "0123456", git.HeadInfo{Commit: "0123456789abcdef"}.ShortCommit())
	assert.Equal(t, "abc", git.HeadInfo{Commit: "abc"}.ShortCommit())
	assert.Equal(t, "", git.HeadInfo{}.ShortCommit())
}
