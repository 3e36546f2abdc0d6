package controller

import (
	"net/http"

	"pylearn_backend/internal/service"
	"pylearn_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DebugController struct {
	assistant *service.AssistantClient
}

func NewDebugController(assistant *service.AssistantClient) *DebugController {
	return &DebugController{assistant: assistant}
}

// Assistant reports whether the configured assistant identity is reachable.
// @Summary Assistant connectivity check
// @Description Retrieves the configured assistant's id, name and model
// @Tags debug
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /debug/assistant [get]
func (c *DebugController) Assistant(ctx *gin.Context) {
	info, err := c.assistant.GetAssistant(ctx.Request.Context())
	if err != nil {
		logger.Log.Error("assistant connectivity check failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not connect to assistant",
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Connected to assistant",
		"assistant": info,
	})
}
