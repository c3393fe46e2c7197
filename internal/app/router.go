package app

import (
	"interview_prep_backend/docs"
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/middleware"
	"interview_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/profile", c.auth.GetProfile)
		authGroup.PUT("/auth/update-profile", c.auth.UpdateProfile)
		authGroup.POST("/auth/upload-image", c.auth.UploadImage)

		sessions := authGroup.Group("/sessions")
		{
			sessions.POST("/create", c.session.Create)
			sessions.GET("/my-sessions", c.session.GetMySessions)
			sessions.GET("/:id", c.session.GetByID)
			sessions.DELETE("/:id", c.session.Delete)
		}

		questions := authGroup.Group("/questions")
		{
			questions.POST("/add", c.question.AddQuestionsToSession)
			questions.POST("/explain", c.question.GetExplanation)
			questions.PUT("/:id/pin", c.question.TogglePin)
			questions.PUT("/:id/note", c.question.UpdateNote)
		}

		ai := authGroup.Group("/ai")
		{
			ai.POST("/generate-questions", c.ai.GenerateQuestions)
			ai.POST("/generate-explanation", c.ai.GenerateExplanation)
			ai.POST("/evaluate-answer", c.ai.EvaluateAnswer)
		}
	}
}
