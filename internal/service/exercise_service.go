package service

import (
	"fmt"
	"time"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/util"
)

// ExerciseStore is the persistence surface the service needs for
// exercises. *repository.ExerciseRepository satisfies it.
type ExerciseStore interface {
	FindAll() ([]model.Exercise, error)
	FindByID(id string) (*model.Exercise, error)
	Create(exercise *model.Exercise) error
	Update(exercise *model.Exercise) error
	Delete(id string) error
}

// SubmissionStore is the persistence surface for the submission log.
// *repository.SubmissionRepository satisfies it.
type SubmissionStore interface {
	Create(submission *model.Submission) error
	FindByExerciseID(exerciseID string) ([]model.Submission, error)
}

// ExerciseService manages the persisted exercise catalog and its
// append-only submission history.
type ExerciseService struct {
	exercises   ExerciseStore
	submissions SubmissionStore
}

func NewExerciseService(exercises ExerciseStore, submissions SubmissionStore) *ExerciseService {
	return &ExerciseService{
		exercises:   exercises,
		submissions: submissions,
	}
}

func (s *ExerciseService) List() ([]model.Exercise, error) {
	return s.exercises.FindAll()
}

func (s *ExerciseService) Get(id string) (*model.Exercise, error) {
	return s.exercises.FindByID(id)
}

func (s *ExerciseService) Create(exercise *model.Exercise) error {
	if exercise.Difficulty != "" && !model.ValidDifficulty(exercise.Difficulty) {
		return util.ErrInvalidDifficulty
	}
	exercise.ID = ""
	return s.exercises.Create(exercise)
}

// Update replaces an exercise's fields, keeping its identity and creation
// time. The difficulty is required: an update may never push a stored row
// outside the enumerated levels.
func (s *ExerciseService) Update(id string, updated *model.Exercise) (*model.Exercise, error) {
	if !model.ValidDifficulty(updated.Difficulty) {
		return nil, util.ErrInvalidDifficulty
	}

	existing, err := s.exercises.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = updated.Title
	existing.Description = updated.Description
	existing.Difficulty = updated.Difficulty
	existing.Topic = updated.Topic
	existing.Hints = updated.Hints
	existing.StarterCode = updated.StarterCode
	existing.TestCases = updated.TestCases

	if err := s.exercises.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ExerciseService) Delete(id string) error {
	return s.exercises.Delete(id)
}

// GenerateTemplated builds a new exercise from the fixed difficulty/topic
// template and persists it. This mirrors the tool's offline variant and
// deliberately makes no assistant call.
func (s *ExerciseService) GenerateTemplated(difficulty, topic string) (*model.Exercise, error) {
	if !model.ValidDifficulty(difficulty) {
		return nil, util.ErrInvalidDifficulty
	}

	exercise := newTemplatedExercise(difficulty, topic)
	if err := s.exercises.Create(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func newTemplatedExercise(difficulty, topic string) *model.Exercise {
	if topic == "" {
		topic = "general"
	}

	title := fmt.Sprintf("%s exercise", difficulty)
	subject := "Python"
	if topic != "general" {
		title = fmt.Sprintf("%s - %s", topic, title)
		subject = topic
	}

	return &model.Exercise{
		Title:       title,
		Description: fmt.Sprintf("A %s-difficulty %s exercise. Complete the code according to the requirements.", difficulty, subject),
		Difficulty:  difficulty,
		Topic:       topic,
		Hints: model.StringList{
			"Read the task statement carefully",
			"Break the problem into steps",
			"Test your solution",
		},
		StarterCode: "# Write your Python code here\n\n",
		TestCases: model.TestCaseList{
			{Input: "sample input", Expected: "expected output"},
		},
	}
}

// CheckSubmission evaluates userCode against the exercise with the
// heuristic evaluator and appends the result to the exercise's submission
// history. Submissions are never mutated afterwards.
func (s *ExerciseService) CheckSubmission(exerciseID, userCode string) (*model.Submission, error) {
	if _, err := s.exercises.FindByID(exerciseID); err != nil {
		return nil, err
	}

	assessment := EvaluateCode(userCode)

	submission := &model.Submission{
		ID:          model.GenerateUUID(),
		ExerciseID:  exerciseID,
		Code:        userCode,
		SubmittedAt: time.Now(),
		IsCorrect:   assessment.IsCorrect,
		Score:       assessment.Score,
		Feedback:    assessment.Feedback,
		Suggestions: assessment.Suggestions,
	}

	if err := s.submissions.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *ExerciseService) Submissions(exerciseID string) ([]model.Submission, error) {
	if _, err := s.exercises.FindByID(exerciseID); err != nil {
		return nil, err
	}
	return s.submissions.FindByExerciseID(exerciseID)
}
