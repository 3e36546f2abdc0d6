package model

import (
	"encoding/json"
	"time"
)

// Submission is one code check against an exercise. Submissions are
// append-only: they are never edited and only disappear with their exercise.
// swagger:model Submission
type Submission struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ExerciseID  string    `gorm:"type:varchar(36);index;not null" json:"exerciseId"`
	Code        string    `gorm:"type:text" json:"code"`
	SubmittedAt time.Time `json:"submittedAt"`

	// Flattened heuristic assessment.
	IsCorrect   bool   `json:"-"`
	Score       int    `json:"-"` // 0-100
	Feedback    string `gorm:"type:text" json:"-"`
	Suggestions string `gorm:"type:text" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}

// Assessment returns the stored result in its wire shape.
func (s Submission) Assessment() HeuristicAssessment {
	return HeuristicAssessment{
		IsCorrect:   s.IsCorrect,
		Score:       s.Score,
		Feedback:    s.Feedback,
		Suggestions: s.Suggestions,
	}
}

// MarshalJSON inlines the assessment under an "assessment" key, matching the
// shape the web client renders.
func (s Submission) MarshalJSON() ([]byte, error) {
	type alias struct {
		ID          string              `json:"id"`
		ExerciseID  string              `json:"exerciseId"`
		Code        string              `json:"code"`
		SubmittedAt time.Time           `json:"submittedAt"`
		Assessment  HeuristicAssessment `json:"assessment"`
	}
	return json.Marshal(alias{
		ID:          s.ID,
		ExerciseID:  s.ExerciseID,
		Code:        s.Code,
		SubmittedAt: s.SubmittedAt,
		Assessment:  s.Assessment(),
	})
}
