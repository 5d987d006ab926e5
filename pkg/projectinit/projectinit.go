package projectinit

import (
	"github.com/google/uuid"
	"github.com/lerenn/project-init/pkg/answers"
	"github.com/lerenn/project-init/pkg/config"
	"github.com/lerenn/project-init/pkg/dependencies"
	"github.com/lerenn/project-init/pkg/manifest"
	"github.com/lerenn/project-init/pkg/notes"
	"github.com/lerenn/project-init/pkg/questionnaire"
	"github.com/lerenn/project-init/pkg/repository"
	"github.com/lerenn/project-init/pkg/workflow"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=projectinit.go -destination=mocks/projectinit.gen.go -package=mocks

// ProjectInit runs project initializations.
type ProjectInit interface {
	// Run collects answers, prepares the project branch, writes the manifest and
	// optionally commits it.
	Run(params RunParams) (Summary, error)
	// ResolveNotesPath returns the notes file to parse.
	ResolveNotesPath(params NotesParams) (string, error)
	// NotesSource returns a source reading the notes at path.
	NotesSource(path string) (answers.Source, error)
	// QuestionnaireSource returns a source asking the embedded questions.
	QuestionnaireSource() (answers.Source, error)
	// WriteNotesTemplate writes an empty notes file named after name in the input
	// directory and returns its path.
	WriteNotesTemplate(name string, force bool) (string, error)
}

// NewProjectInitParams contains parameters for creating a new ProjectInit.
type NewProjectInitParams struct {
	Dependencies   *dependencies.Dependencies
	Config         config.Config
	RepositoryPath string
	// RunID identifies the run in logs and summaries. Generated when empty.
	RunID string
	// Orchestrator and ManifestWriter are built from Dependencies when nil.
	Orchestrator   workflow.Orchestrator
	ManifestWriter manifest.Writer
}

type realProjectInit struct {
	deps         *dependencies.Dependencies
	config       config.Config
	repoPath     string
	runID        string
	orchestrator workflow.Orchestrator
	writer       manifest.Writer
}

// NewProjectInit creates a new ProjectInit.
func NewProjectInit(params NewProjectInitParams) (ProjectInit, error) {
	if params.Dependencies == nil {
		params.Dependencies = dependencies.New()
	}
	deps := params.Dependencies
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if params.RepositoryPath == "" {
		params.RepositoryPath = "."
	}
	if params.RunID == "" {
		params.RunID = uuid.NewString()
	}

	if params.Orchestrator == nil {
		orchestrator, err := newOrchestrator(deps, params.RepositoryPath)
		if err != nil {
			return nil, err
		}
		params.Orchestrator = orchestrator
	}

	if params.ManifestWriter == nil {
		writer, err := manifest.NewWriter(manifest.NewWriterParams{FS: deps.FS, Logger: deps.Logger})
		if err != nil {
			return nil, err
		}
		params.ManifestWriter = writer
	}

	return &realProjectInit{
		deps:         deps,
		config:       params.Config,
		repoPath:     params.RepositoryPath,
		runID:        params.RunID,
		orchestrator: params.Orchestrator,
		writer:       params.ManifestWriter,
	}, nil
}

func newOrchestrator(deps *dependencies.Dependencies, repoPath string) (workflow.Orchestrator, error) {
	repoParams := repository.NewRepositoryParams{
		Git:            deps.Git,
		Logger:         deps.Logger,
		RepositoryPath: repoPath,
	}
	validator, err := repository.NewValidator(repoParams)
	if err != nil {
		return nil, err
	}
	creator, err := repository.NewBranchCreator(repoParams)
	if err != nil {
		return nil, err
	}
	return workflow.NewOrchestrator(workflow.NewOrchestratorParams{
		Validator:     validator,
		BranchCreator: creator,
		Logger:        deps.Logger,
	})
}

// NotesSource returns a source reading the notes at path.
func (p *realProjectInit) NotesSource(path string) (answers.Source, error) {
	parser, err := notes.NewParser(notes.NewParserParams{FS: p.deps.FS, Logger: p.deps.Logger})
	if err != nil {
		return nil, err
	}
	return notes.NewSource(parser, path), nil
}

// QuestionnaireSource returns a source asking the embedded questions.
func (p *realProjectInit) QuestionnaireSource() (answers.Source, error) {
	return questionnaire.NewQuestionnaire(questionnaire.NewQuestionnaireParams{
		Prompter: p.deps.Prompt,
		Logger:   p.deps.Logger,
	})
}

// WriteNotesTemplate writes an empty notes file into the input directory.
func (p *realProjectInit) WriteNotesTemplate(name string, force bool) (string, error) {
	path, err := notes.WriteTemplate(notes.WriteTemplateParams{
		FS:    p.deps.FS,
		Dir:   p.config.InputDir,
		Name:  name,
		Force: force,
	})
	if err != nil {
		return "", err
	}
	p.deps.Logger.Infof("Notes template written to %s", path)
	return path, nil
}
