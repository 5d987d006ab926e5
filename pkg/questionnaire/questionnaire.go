package questionnaire

import (
	"fmt"

	"github.com/lerenn/project-init/pkg/answers"
	"github.com/lerenn/project-init/pkg/logger"
	"github.com/lerenn/project-init/pkg/prompt"
)

// NewQuestionnaireParams contains parameters for creating a new questionnaire source.
type NewQuestionnaireParams struct {
	Prompter  prompt.Prompter
	Logger    logger.Logger
	Questions []Question // empty means DefaultQuestions
}

type questionnaire struct {
	prompter  prompt.Prompter
	logger    logger.Logger
	questions []Question
}

// NewQuestionnaire returns an answers.Source that asks every question in order.
func NewQuestionnaire(params NewQuestionnaireParams) (answers.Source, error) {
	if params.Prompter == nil {
		return nil, ErrPrompterMissing
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	if len(params.Questions) == 0 {
		questions, err := DefaultQuestions()
		if err != nil {
			return nil, err
		}
		params.Questions = questions
	}
	return &questionnaire{
		prompter:  params.Prompter,
		logger:    params.Logger,
		questions: params.Questions,
	}, nil
}

func (q *questionnaire) Name() string {
	return "questionnaire"
}

// Collect asks each question. Blank answers are kept as empty values.
func (q *questionnaire) Collect() (answers.Answers, error) {
	q.logger.Infof("Starting project questionnaire (%d questions)", len(q.questions))

	result := make(answers.Answers, len(q.questions))
	for _, question := range q.questions {
		answer, err := q.prompter.PromptForText(question.Question, "")
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %w", ErrQuestionnaireInput, question.Key, err)
		}
		result[question.Key] = answer
		q.logger.Debugf("Answer for %s: %q", question.Key, answer)
	}

	q.logger.Infof("Questionnaire completed")
	return result, nil
}
