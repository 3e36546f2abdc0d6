package util

import "errors"

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrInvalidDifficulty = errors.New("difficulty must be beginner, intermediate or advanced")
)
