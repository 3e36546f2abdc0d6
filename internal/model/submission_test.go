package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSubmissionMarshalNestsAssessment(t *testing.T) {
	s := Submission{
		ID:          "sub-1",
		ExerciseID:  "ex-1",
		Code:        "def f():\n    return 1",
		SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		IsCorrect:   true,
		Score:       70,
		Feedback:    "good",
		Suggestions: "none",
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got struct {
		ID         string `json:"id"`
		Assessment struct {
			IsCorrect bool `json:"isCorrect"`
			Score     int  `json:"score"`
		} `json:"assessment"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.ID != "sub-1" {
		t.Errorf("id = %q", got.ID)
	}
	if !got.Assessment.IsCorrect || got.Assessment.Score != 70 {
		t.Errorf("assessment = %+v, want isCorrect=true score=70", got.Assessment)
	}
}

func TestStringListScanRoundTrip(t *testing.T) {
	original := StringList{"hint one", "hint two", "hint three"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var scanned StringList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(scanned) != 3 || scanned[0] != "hint one" || scanned[2] != "hint three" {
		t.Errorf("round trip lost order or entries: %v", scanned)
	}
}

func TestStringListScanNil(t *testing.T) {
	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("Scan(nil) = %v, want empty non-nil list", l)
	}
}

func TestValidDifficulty(t *testing.T) {
	for _, level := range []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		if !ValidDifficulty(level) {
			t.Errorf("ValidDifficulty(%q) = false", level)
		}
	}
	for _, level := range []string{"", "expert", "BEGINNER"} {
		if ValidDifficulty(level) {
			t.Errorf("ValidDifficulty(%q) = true", level)
		}
	}
}
