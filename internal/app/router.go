package app

import (
	"quiz_master_backend/docs"
	"quiz_master_backend/internal/config"
	"quiz_master_backend/internal/middleware"
	"quiz_master_backend/internal/model"
	"quiz_master_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/admin/login", c.auth.AdminLogin)
	}

	// 用户端接口
	userGroup := router.Group("/api/user")
	userGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleUser))
	{
		userGroup.GET("/dashboard", c.dashboard.GetDashboard)
		userGroup.GET("/summary", c.dashboard.GetSummary)
		userGroup.GET("/start_quiz/:quizId", c.session.StartQuiz)
		userGroup.POST("/submit_quiz/:quizId", c.session.SubmitQuiz)
		userGroup.GET("/view_quiz/:quizId", c.session.ViewQuiz)
	}

	// 管理端接口
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		adminGroup.GET("/users", c.analytics.ListUsers)
		adminGroup.GET("/user_progress", c.analytics.GetUserProgress)
		adminGroup.GET("/user_progress_data", c.analytics.GetProgressChartData)
		adminGroup.GET("/user_performance_data", c.analytics.GetPerformanceChartData)

		adminGroup.POST("/subjects", c.content.CreateSubject)
		adminGroup.GET("/subjects", c.content.ListSubjects)
		adminGroup.PUT("/subjects/:id", c.content.UpdateSubject)
		adminGroup.DELETE("/subjects/:id", c.content.DeleteSubject)

		adminGroup.POST("/subjects/:subjectId/chapters", c.content.CreateChapter)
		adminGroup.GET("/subjects/:subjectId/chapters", c.content.ListChapters)
		adminGroup.PUT("/chapters/:id", c.content.UpdateChapter)
		adminGroup.DELETE("/chapters/:id", c.content.DeleteChapter)

		adminGroup.POST("/chapters/:chapterId/quizzes", c.quiz.CreateQuiz)
		adminGroup.GET("/chapters/:chapterId/quizzes", c.quiz.ListQuizzes)
		adminGroup.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
		adminGroup.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)

		adminGroup.POST("/quizzes/:quizId/questions", c.quiz.CreateQuestion)
		adminGroup.GET("/quizzes/:quizId/questions", c.quiz.ListQuestions)
		adminGroup.PUT("/questions/:id", c.quiz.UpdateQuestion)
		adminGroup.DELETE("/questions/:id", c.quiz.DeleteQuestion)
	}
}
