//go:build unit

package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswers_ProjectNameOr(t *testing.T) {
	tests := []struct {
		name     string
		answers  Answers
		expected string
	}{
		{name: "present", answers: Answers{KeyProjectName: "Acme Forecast"}, expected: "Acme Forecast"},
		{name: "trimmed", answers: Answers{KeyProjectName: "  Acme  "}, expected: "Acme"},
		{name: "blank", answers: Answers{KeyProjectName: "   "}, expected: "untitled"},
		{name: "missing", answers: Answers{"client_name": "Acme"}, expected: "untitled"},
		{name: "nil map", answers: nil, expected: "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.answers.ProjectNameOr("untitled"))
		})
	}
}

func TestAnswers_Empty(t *testing.T) {
	assert.False(t, Answers{"primary_goal": "", "client_name": "Acme"}.Empty())
	assert.True(t, Answers{"primary_goal": " \n"}.Empty())
	assert.True(t, Answers{}.Empty())
}
