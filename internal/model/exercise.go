package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is a JSON-encoded string array column. Order is preserved.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("unsupported column type for StringList")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// TestCase pairs a sample input with its expected output.
// swagger:model TestCase
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// TestCaseList is a JSON-encoded test case array column.
type TestCaseList []TestCase

func (l TestCaseList) Value() (driver.Value, error) {
	if l == nil {
		l = TestCaseList{}
	}
	return json.Marshal(l)
}

func (l *TestCaseList) Scan(value interface{}) error {
	if value == nil {
		*l = TestCaseList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("unsupported column type for TestCaseList")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// Exercise is a hand-authored or templated practice problem.
// swagger:model Exercise
type Exercise struct {
	UUIDBase
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Difficulty  string       `gorm:"size:20;index" json:"difficulty"` // beginner, intermediate, advanced
	Topic       string       `gorm:"size:100" json:"topic"`
	Hints       StringList   `gorm:"type:json" json:"hints"`
	StarterCode string       `gorm:"type:text" json:"starterCode"`
	TestCases   TestCaseList `gorm:"type:json" json:"testCases"`
	Submissions []Submission `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"submissions,omitempty"`
}

func (Exercise) TableName() string {
	return "exercises"
}
