package service

import (
	"strings"

	"pylearn_backend/internal/model"
)

// Lexical marker scores. The sum classifies as correct at the threshold.
// This is a deliberately coarse stand-in for execution-based grading, which
// is out of scope: it checks that code *looks* like a solution, nothing
// more.
const (
	outputScore      = 30 // a print call
	functionScore    = 30 // a def statement
	returnScore      = 40 // a return statement
	correctThreshold = 70
)

// EvaluateCode scores submitted code by the presence of lexical markers.
// It is pure and deterministic and never fails.
func EvaluateCode(userCode string) model.HeuristicAssessment {
	score := 0
	if strings.Contains(userCode, "print") {
		score += outputScore
	}
	if strings.Contains(userCode, "def") {
		score += functionScore
	}
	if strings.Contains(userCode, "return") {
		score += returnScore
	}

	isCorrect := score >= correctThreshold

	feedback := "Your code does not yet meet the requirements. Check that every part of the task is implemented."
	suggestions := "Make sure you define a function and use a return statement to hand back the result."
	if isCorrect {
		feedback = "Your code produces output in the expected structure and uses a proper function definition."
		suggestions = "Consider adding error handling and covering edge cases."
	}

	return model.HeuristicAssessment{
		IsCorrect:   isCorrect,
		Score:       score,
		Feedback:    feedback,
		Suggestions: suggestions,
	}
}
