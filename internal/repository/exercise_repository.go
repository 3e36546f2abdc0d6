package repository

import (
	"errors"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/util"

	"gorm.io/gorm"
)

// ExerciseRepository handles exercise persistence.
type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

// FindAll returns every exercise, oldest first.
func (r *ExerciseRepository) FindAll() ([]model.Exercise, error) {
	var exercises []model.Exercise
	err := r.DB.Order("created_at ASC").Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepository) FindByID(id string) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.DB.First(&exercise, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) Create(exercise *model.Exercise) error {
	return r.DB.Create(exercise).Error
}

// Update replaces the mutable fields of an existing exercise. CreatedAt is
// never touched.
func (r *ExerciseRepository) Update(exercise *model.Exercise) error {
	return r.DB.Model(exercise).Select(
		"title", "description", "difficulty", "topic",
		"hints", "starter_code", "test_cases", "updated_at",
	).Updates(exercise).Error
}

// Delete removes the exercise and, via the FK constraint, its submissions.
func (r *ExerciseRepository) Delete(id string) error {
	res := r.DB.Delete(&model.Exercise{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrExerciseNotFound
	}
	return nil
}
