//go:build unit

package dependencies

import (
	"testing"

	"github.com/lerenn/project-init/pkg/config"
	"github.com/lerenn/project-init/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.Console)
	assert.Nil(t, deps.Config)
	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestDependencies_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(d *Dependencies)
		expectedErr error
	}{
		{name: "complete", mutate: func(*Dependencies) {}},
		{name: "missing fs", mutate: func(d *Dependencies) { d.FS = nil }, expectedErr: ErrFSMissing},
		{name: "missing git", mutate: func(d *Dependencies) { d.Git = nil }, expectedErr: ErrGitMissing},
		{name: "missing logger", mutate: func(d *Dependencies) { d.Logger = nil }, expectedErr: ErrLoggerMissing},
		{name: "missing prompt", mutate: func(d *Dependencies) { d.Prompt = nil }, expectedErr: ErrPromptMissing},
		{name: "missing console", mutate: func(d *Dependencies) { d.Console = nil }, expectedErr: ErrConsoleMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := New().WithConfig(config.NewManager(config.NewManagerParams{}))
			tt.mutate(deps)

			err := deps.Validate()
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestDependencies_AllMissing(t *testing.T) {
	assert.ErrorIs(t, (&Dependencies{}).Validate(), ErrFSMissing)
}

func TestDependencies_Chaining(t *testing.T) {
	log := logger.NewNoopLogger()
	deps := New().WithLogger(log)
	assert.Same(t, log, deps.Logger)
}
