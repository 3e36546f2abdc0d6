package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pylearn_backend/internal/model"
	"pylearn_backend/pkg/logger"

	"go.uber.org/zap"
)

// AnswerCheckingService asks the assistant to judge submitted code against
// an exercise. The contract constrains the assessment's shape, not the
// quality of the judgment.
type AnswerCheckingService struct {
	assistant *AssistantClient
}

func NewAnswerCheckingService(assistant *AssistantClient) *AnswerCheckingService {
	return &AnswerCheckingService{assistant: assistant}
}

const checkPromptTemplate = `Evaluate whether the following code correctly solves the exercise.

Exercise: %s

Validation criteria:
%s

Reference solution:
` + "```python\n%s\n```" + `

Submitted code:
` + "```python\n%s\n```" + `

Respond as JSON:
{
  "status": "success or error",
  "message": "short verdict",
  "explanation": "why the answer is correct or wrong",
  "suggestions": ["improvement suggestions if anything is wrong"]
}
The response must be parseable JSON.`

// CheckAnswer runs the same pipeline as lesson generation, with a prompt
// embedding the exercise, its criteria, the reference solution and the
// user's code.
func (s *AnswerCheckingService) CheckAnswer(ctx context.Context, exercise model.LessonExercise, userCode string) (*model.AIAssessment, error) {
	prompt := fmt.Sprintf(checkPromptTemplate,
		exercise.Question,
		strings.Join(exercise.ValidationCriteria, "\n"),
		exercise.Solution,
		userCode,
	)

	reply, err := s.assistant.RunPrompt(ctx, prompt)
	if err != nil {
		return nil, wrapPipelineError(err)
	}

	payload, err := ExtractJSON(reply)
	if err != nil {
		logger.Log.Error("assessment response had no usable JSON",
			zap.String("rawResponse", reply),
			zap.Error(err),
		)
		return nil, wrapPipelineError(err)
	}

	var assessment model.AIAssessment
	if err := json.Unmarshal(payload, &assessment); err != nil {
		return nil, wrapPipelineError(&InvalidJSONError{Reason: err.Error()})
	}
	if assessment.Status == "" {
		return nil, wrapPipelineError(&InvalidJSONError{Reason: "assessment is missing a status"})
	}

	return &assessment, nil
}
