package projectinit

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/project-init/pkg/branch"
)

// Run executes one project initialization.
//
// The branch is created before the manifest is written, so the manifest lands on the new
// branch. A manifest or commit failure leaves the repository on that branch; the returned
// Summary says so through BranchCreated.
func (p *realProjectInit) Run(params RunParams) (Summary, error) {
	summary := Summary{RunID: p.runID}
	if params.Source == nil {
		return summary, ErrSourceMissing
	}
	summary.Source = params.Source.Name()

	p.deps.Logger.Infof("Collecting answers from %s", summary.Source)
	a, err := params.Source.Collect()
	if err != nil {
		return summary, fmt.Errorf("%w: %w", ErrAnswers, err)
	}
	summary.Answers = a

	summary.ProjectName = a.ProjectNameOr(p.config.DefaultProjectName)
	summary.Slug = branch.Slugify(summary.ProjectName)
	if summary.Slug == "" {
		summary.Slug = branch.Slugify(p.config.DefaultProjectName)
	}
	p.deps.Logger.Infof("Project name: '%s' (slug %s)", summary.ProjectName, summary.Slug)

	if !params.SkipBranch {
		if err := p.prepareBranch(&summary); err != nil {
			return summary, err
		}
	}

	manifestPath, err := p.writer.Write(p.outputDir(), summary.Slug, a)
	if err != nil {
		return summary, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	summary.ManifestPath = manifestPath

	if params.Commit && !params.SkipBranch {
		if err := p.commitManifest(&summary); err != nil {
			return summary, err
		}
	}

	if !params.SkipBranch {
		p.describeHead(&summary)
	}
	return summary, nil
}

func (p *realProjectInit) prepareBranch(summary *Summary) error {
	name, err := branch.ProjectBranch(p.config.BranchPrefix, summary.Slug)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBranchName, err)
	}
	summary.Branch = name

	result, err := p.orchestrator.PrepareProjectBranch(name)
	summary.Workflow = result
	return err
}

// outputDir resolves a relative output directory against the repository.
func (p *realProjectInit) outputDir() string {
	if filepath.IsAbs(p.config.OutputDir) {
		return p.config.OutputDir
	}
	return filepath.Join(p.repoPath, p.config.OutputDir)
}

func (p *realProjectInit) commitManifest(summary *Summary) error {
	path := summary.ManifestPath
	if rel, err := filepath.Rel(p.repoPath, path); err == nil {
		path = rel
	}

	if err := p.deps.Git.Add(p.repoPath, path); err != nil {
		return fmt.Errorf("%w: %w", ErrCommit, err)
	}
	message := fmt.Sprintf("Add project manifest for %s", summary.ProjectName)
	if err := p.deps.Git.Commit(p.repoPath, message); err != nil {
		return fmt.Errorf("%w: %w", ErrCommit, err)
	}
	summary.Committed = true
	p.deps.Logger.Infof("Committed %s with message: '%s'", path, message)
	return nil
}

// describeHead is informational only; failures are logged.
func (p *realProjectInit) describeHead(summary *Summary) {
	head, err := p.deps.Git.DescribeHead(p.repoPath)
	if err != nil {
		p.deps.Logger.Warnf("Could not read HEAD: %v", err)
		return
	}
	summary.Head = head
}
