package routes

import (
	"ndiscare-backend/internal/handlers"
	"ndiscare-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, searchHandler *handlers.SearchHandler) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.ResponseTime())

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// Public: frontend needs these before anyone logs in
		api.GET("/support-types", handlers.GetSupportTypes)
		api.GET("/workers/:id", handlers.GetWorker)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetUserProfile)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/contractors/search", searchHandler.SearchContractors)
			}
		}
	}
}
