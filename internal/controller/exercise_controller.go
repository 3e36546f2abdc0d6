package controller

import (
	"errors"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/service"
	"pylearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	exerciseService *service.ExerciseService
}

func NewExerciseController(exerciseService *service.ExerciseService) *ExerciseController {
	return &ExerciseController{exerciseService: exerciseService}
}

type GenerateExerciseRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
	Topic      string `json:"topic"`
}

type CheckSubmissionRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	UserCode   string `json:"userCode" binding:"required"`
}

// List returns the whole exercise catalog.
// @Summary List exercises
// @Tags exercises
// @Produce json
// @Success 200 {array} model.Exercise
// @Router /exercises [get]
func (c *ExerciseController) List(ctx *gin.Context) {
	exercises, err := c.exerciseService.List()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.OK(ctx, exercises)
}

// Get returns one exercise by id.
// @Summary Get an exercise
// @Tags exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} model.Exercise
// @Failure 404 {object} map[string]string
// @Router /exercises/{id} [get]
func (c *ExerciseController) Get(ctx *gin.Context) {
	exercise, err := c.exerciseService.Get(ctx.Param("id"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.OK(ctx, exercise)
}

// Create stores a hand-authored exercise.
// @Summary Create an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param exercise body model.Exercise true "Exercise"
// @Success 201 {object} model.Exercise
// @Failure 400 {object} map[string]string
// @Router /exercises [post]
func (c *ExerciseController) Create(ctx *gin.Context) {
	var exercise model.Exercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.exerciseService.Create(&exercise); err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Created(ctx, exercise)
}

// Update replaces an exercise's fields.
// @Summary Update an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID"
// @Param exercise body model.Exercise true "Exercise"
// @Success 200 {object} model.Exercise
// @Failure 404 {object} map[string]string
// @Router /exercises/{id} [put]
func (c *ExerciseController) Update(ctx *gin.Context) {
	var exercise model.Exercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.exerciseService.Update(ctx.Param("id"), &exercise)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.OK(ctx, updated)
}

// Delete removes an exercise and its submission history.
// @Summary Delete an exercise
// @Tags exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exercises/{id} [delete]
func (c *ExerciseController) Delete(ctx *gin.Context) {
	if err := c.exerciseService.Delete(ctx.Param("id")); err != nil {
		c.writeError(ctx, err)
		return
	}
	util.OK(ctx, gin.H{"status": "deleted"})
}

// Generate creates a templated exercise for a difficulty and topic.
// @Summary Generate a templated exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body GenerateExerciseRequest true "Difficulty and topic"
// @Success 201 {object} model.Exercise
// @Failure 400 {object} map[string]string
// @Router /exercises/generate [post]
func (c *ExerciseController) Generate(ctx *gin.Context) {
	var req GenerateExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exercise, err := c.exerciseService.GenerateTemplated(req.Difficulty, req.Topic)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Created(ctx, exercise)
}

// Check evaluates submitted code heuristically and records the submission.
// @Summary Check a submission against an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body CheckSubmissionRequest true "Exercise id and user code"
// @Success 200 {object} model.Submission
// @Failure 404 {object} map[string]string
// @Router /exercises/check [post]
func (c *ExerciseController) Check(ctx *gin.Context) {
	var req CheckSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.exerciseService.CheckSubmission(req.ExerciseID, req.UserCode)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.OK(ctx, submission)
}

// Submissions lists an exercise's submission history, oldest first.
// @Summary List an exercise's submissions
// @Tags exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {array} model.Submission
// @Failure 404 {object} map[string]string
// @Router /exercises/{id}/submissions [get]
func (c *ExerciseController) Submissions(ctx *gin.Context) {
	submissions, err := c.exerciseService.Submissions(ctx.Param("id"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.OK(ctx, submissions)
}

func (c *ExerciseController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrExerciseNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidDifficulty):
		util.BadRequest(ctx, err.Error())
	default:
		util.InternalError(ctx, err)
	}
}
