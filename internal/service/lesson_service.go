package service

import (
	"context"
	"encoding/json"
	"fmt"

	"pylearn_backend/internal/model"
	"pylearn_backend/pkg/logger"

	"go.uber.org/zap"
)

// LessonService turns a difficulty level into a structured lesson with one
// embedded exercise, generated by the assistant.
type LessonService struct {
	assistant *AssistantClient
}

func NewLessonService(assistant *AssistantClient) *LessonService {
	return &LessonService{assistant: assistant}
}

const lessonPromptTemplate = `Generate a %s-difficulty Python lesson with one practice exercise. Respond as JSON with exactly these fields:
{
  "title": "lesson title",
  "content": "lesson content as HTML",
  "exercise": {
    "question": "exercise statement",
    "hints": ["hint 1", "hint 2"],
    "starter_code": "starter code",
    "solution": "reference solution",
    "validation_criteria": ["criterion 1", "criterion 2"]
  }
}
The response must be parseable JSON.`

// GenerateLesson runs the full assistant pipeline for the difficulty level.
// Every failure is tagged with the stage it came from; default content is
// never substituted.
func (s *LessonService) GenerateLesson(ctx context.Context, difficulty string) (*model.Lesson, error) {
	prompt := fmt.Sprintf(lessonPromptTemplate, difficulty)

	reply, err := s.assistant.RunPrompt(ctx, prompt)
	if err != nil {
		return nil, wrapPipelineError(err)
	}

	payload, err := ExtractJSON(reply)
	if err != nil {
		logger.Log.Error("lesson response had no usable JSON",
			zap.String("difficulty", difficulty),
			zap.String("rawResponse", reply),
			zap.Error(err),
		)
		return nil, wrapPipelineError(err)
	}

	var lesson model.Lesson
	if err := json.Unmarshal(payload, &lesson); err != nil {
		return nil, wrapPipelineError(&InvalidJSONError{Reason: err.Error()})
	}
	if err := validateLesson(&lesson); err != nil {
		return nil, wrapPipelineError(err)
	}

	return &lesson, nil
}

// validateLesson rejects structurally empty payloads so callers always get
// either a usable lesson or a tagged error.
func validateLesson(lesson *model.Lesson) error {
	switch {
	case lesson.Title == "":
		return &InvalidJSONError{Reason: "lesson is missing a title"}
	case lesson.Exercise.Question == "":
		return &InvalidJSONError{Reason: "lesson exercise is missing a question"}
	case len(lesson.Exercise.Hints) == 0:
		return &InvalidJSONError{Reason: "lesson exercise has no hints"}
	case len(lesson.Exercise.ValidationCriteria) == 0:
		return &InvalidJSONError{Reason: "lesson exercise has no validation criteria"}
	}
	return nil
}
