package repository

import (
	"pylearn_backend/internal/model"

	"gorm.io/gorm"
)

// SubmissionRepository handles the append-only submission log.
type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.DB.Create(submission).Error
}

// FindByExerciseID returns an exercise's submissions, oldest first, so the
// client can render the history in submission order.
func (r *SubmissionRepository) FindByExerciseID(exerciseID string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Where("exercise_id = ?", exerciseID).
		Order("submitted_at ASC").
		Find(&submissions).Error
	return submissions, err
}
