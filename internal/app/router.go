package app

import (
	"pretty_exam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		categories := api.Group("/categories")
		{
			categories.GET("", c.category.GetAll)
			categories.POST("", c.category.Create)
			categories.GET("/name-exists", c.category.NameExists)
			categories.PUT("/:id", c.category.Update)
			categories.DELETE("/:id", c.category.Delete)
			categories.GET("/:id/questions", c.question.GetByCategory)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", c.question.Search)
			questions.POST("", c.question.Create)
			questions.GET("/:id", c.question.GetByID)
			questions.PUT("/:id", c.question.Update)
			questions.DELETE("/:id", c.question.Delete)
		}

		exams := api.Group("/exams")
		{
			exams.GET("", c.exam.GetAll)
			exams.POST("", c.exam.Create)
			exams.GET("/:id", c.exam.GetByID)
			exams.PUT("/:id", c.exam.Update)
			exams.DELETE("/:id", c.exam.Delete)
			exams.GET("/:id/questions", c.exam.GetQuestions)
			exams.POST("/:id/questions", c.exam.AddQuestions)
			exams.DELETE("/:id/questions", c.exam.RemoveQuestions)
			exams.GET("/:id/results", c.result.GetByExam)
		}

		results := api.Group("/results")
		{
			results.POST("", c.result.Create)
			results.GET("/:id", c.result.GetByID)
			results.DELETE("/:id", c.result.Delete)
			results.POST("/:id/answers", c.result.RecordAnswer)
		}

		generation := api.Group("/generation")
		{
			generation.POST("/questions", c.generation.Generate)
			generation.POST("/import", c.generation.Import)
			generation.POST("/documents", c.generation.UploadDocument)
		}
	}
}
