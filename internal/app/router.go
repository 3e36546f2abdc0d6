package app

import (
	"pylearn_backend/docs"
	"pylearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// AI-backed lesson workflow
		api.POST("/generateLesson", c.lesson.GenerateLesson)
		api.POST("/checkAnswer", c.lesson.CheckAnswer)

		// Exercise catalog with heuristic checking
		api.GET("/exercises", c.exercise.List)
		api.POST("/exercises", c.exercise.Create)
		api.POST("/exercises/generate", c.exercise.Generate)
		api.POST("/exercises/check", c.exercise.Check)
		api.GET("/exercises/:id", c.exercise.Get)
		api.PUT("/exercises/:id", c.exercise.Update)
		api.DELETE("/exercises/:id", c.exercise.Delete)
		api.GET("/exercises/:id/submissions", c.exercise.Submissions)

		api.GET("/debug/assistant", c.debug.Assistant)
	}
}
