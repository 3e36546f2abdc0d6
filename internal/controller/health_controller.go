package controller

import (
	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// HealthCheck is a pure liveness probe: it always answers ok and checks no
// dependencies. Assistant and database reachability are reported by the
// debug endpoint instead.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
	})
}
