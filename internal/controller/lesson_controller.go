package controller

import (
	"pylearn_backend/internal/model"
	"pylearn_backend/internal/service"
	"pylearn_backend/internal/util"
	"pylearn_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LessonController struct {
	lessonService *service.LessonService
	answerService *service.AnswerCheckingService
}

func NewLessonController(lessonService *service.LessonService, answerService *service.AnswerCheckingService) *LessonController {
	return &LessonController{
		lessonService: lessonService,
		answerService: answerService,
	}
}

type GenerateLessonRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

type CheckAnswerRequest struct {
	Exercise model.LessonExercise `json:"exercise" binding:"required"`
	UserCode string               `json:"userCode" binding:"required"`
}

// GenerateLesson produces a fresh AI-generated lesson for a difficulty.
// @Summary Generate a Python lesson
// @Description Asks the configured assistant to generate a lesson with one exercise
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body GenerateLessonRequest true "Difficulty level"
// @Success 200 {object} model.Lesson
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /generateLesson [post]
func (c *LessonController) GenerateLesson(ctx *gin.Context) {
	var req GenerateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !model.ValidDifficulty(req.Difficulty) {
		util.BadRequest(ctx, util.ErrInvalidDifficulty.Error())
		return
	}

	logger.Log.Info("lesson requested", zap.String("difficulty", req.Difficulty))

	lesson, err := c.lessonService.GenerateLesson(ctx.Request.Context(), req.Difficulty)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	util.OK(ctx, lesson)
}

// CheckAnswer asks the assistant to judge submitted code.
// @Summary Check an exercise answer
// @Description Sends the exercise and the user's code to the assistant for assessment
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body CheckAnswerRequest true "Exercise and user code"
// @Success 200 {object} model.AIAssessment
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /checkAnswer [post]
func (c *LessonController) CheckAnswer(ctx *gin.Context) {
	var req CheckAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.answerService.CheckAnswer(ctx.Request.Context(), req.Exercise, req.UserCode)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	util.OK(ctx, assessment)
}
