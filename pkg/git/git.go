package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides the Git operations needed to prepare a project branch.
type Git interface {
	// IsRepository executes `git rev-parse --git-dir` in the specified directory.
	IsRepository(repoPath string) error

	// StatusPorcelain executes `git status --porcelain` and returns its raw output.
	StatusPorcelain(repoPath string) (string, error)

	// BranchExists checks if refs/heads/<branch> exists locally.
	BranchExists(repoPath, branch string) (bool, error)

	// CheckoutNewBranch creates a branch at HEAD and switches the working tree to it.
	CheckoutNewBranch(repoPath, branch string) error

	// Add adds files to the Git staging area.
	Add(repoPath string, files ...string) error

	// Commit creates a new commit with the specified message.
	Commit(repoPath, message string) error

	// DescribeHead reads the branch and commit HEAD points at without running git.
	DescribeHead(repoPath string) (HeadInfo, error)
}

type realGit struct {
	runner Runner
}

// NewGit creates a new Git instance backed by the git binary.
func NewGit() Git {
	return &realGit{runner: NewRunner()}
}

// NewGitWithRunner creates a new Git instance that executes commands through runner.
func NewGitWithRunner(runner Runner) Git {
	if runner == nil {
		runner = NewRunner()
	}
	return &realGit{runner: runner}
}
