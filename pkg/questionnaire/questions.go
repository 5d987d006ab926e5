package questionnaire

import (
	"fmt"

	"github.com/lerenn/project-init/configs"
	"gopkg.in/yaml.v3"
)

// QuestionTypeText is the only supported question type.
const QuestionTypeText = "text"

// Question is one entry of the questionnaire.
type Question struct {
	Key      string `yaml:"key"`
	Question string `yaml:"question"`
	Type     string `yaml:"type"`
}

// DefaultQuestions returns the embedded questionnaire.
func DefaultQuestions() ([]Question, error) {
	return ParseQuestions(configs.QuestionsYAML)
}

// ParseQuestions decodes a YAML list of questions and checks each one.
func ParseQuestions(data []byte) ([]Question, error) {
	var questions []Question
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuestionsParse, err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.Type == "" {
			questions[i].Type = QuestionTypeText
			q.Type = QuestionTypeText
		}
		switch {
		case q.Key == "" || q.Question == "":
			return nil, fmt.Errorf("%w: entry %d needs a key and a question", ErrInvalidQuestion, i+1)
		case q.Type != QuestionTypeText:
			return nil, fmt.Errorf("%w: %s has unsupported type %q", ErrInvalidQuestion, q.Key, q.Type)
		case seen[q.Key]:
			return nil, fmt.Errorf("%w: duplicate key %s", ErrInvalidQuestion, q.Key)
		}
		seen[q.Key] = true
	}
	return questions, nil
}
