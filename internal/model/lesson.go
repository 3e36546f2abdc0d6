package model

// Difficulty levels accepted by lesson and exercise generation.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ValidDifficulty reports whether level is one of the supported values.
func ValidDifficulty(level string) bool {
	switch level {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Lesson is one AI-generated teaching unit. Lessons are never persisted
// server-side; each generation request produces a fresh one.
// swagger:model Lesson
type Lesson struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"` // HTML-formatted prose
	Exercise LessonExercise `json:"exercise"`
}

// LessonExercise is the practice problem embedded in a generated lesson.
// Hints and validation criteria are ordered: hint 1 comes before hint 2.
// swagger:model LessonExercise
type LessonExercise struct {
	Question           string   `json:"question"`
	Hints              []string `json:"hints"`
	StarterCode        string   `json:"starter_code"`
	Solution           string   `json:"solution"`
	ValidationCriteria []string `json:"validation_criteria"`
}

// AIAssessment is the assistant's judgment of a submission.
// swagger:model AIAssessment
type AIAssessment struct {
	Status      string   `json:"status"` // success or error
	Message     string   `json:"message"`
	Explanation string   `json:"explanation,omitempty"`
	Suggestions []string `json:"suggestions"`
}

// HeuristicAssessment is the lexical evaluator's judgment of a submission.
// swagger:model HeuristicAssessment
type HeuristicAssessment struct {
	IsCorrect   bool   `json:"isCorrect"`
	Score       int    `json:"score"` // 0-100
	Feedback    string `json:"feedback"`
	Suggestions string `json:"suggestions"`
}
