package routes

import (
	"net/http"

	"portfolio-api/config"
	"portfolio-api/controllers"
	"portfolio-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			if sqlDB, err := config.DB.DB(); err != nil || sqlDB.Ping() != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"status":  "degraded",
					"message": "Database unreachable",
				})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"message": "Portfolio API is running",
			})
		})

		// Public contact form
		contact := api.Group("/contact")
		{
			contact.POST("", controllers.SubmitContact)
			contact.GET("", controllers.GetContacts)
			contact.GET("/:id", controllers.GetContact)
			contact.PATCH("/:id", controllers.UpdateContactStatus)
		}

		// Admin (shared-secret or session token)
		admin := api.Group("/admin")
		{
			admin.POST("/login", controllers.AdminLogin)

			protected := admin.Group("")
			protected.Use(middleware.AdminAuthMiddleware())
			{
				protected.GET("/contacts", controllers.AdminGetContacts)
				protected.GET("/contacts/stats", controllers.AdminGetContactStats)
				protected.PATCH("/contacts/:id/status", controllers.AdminUpdateContactStatus)
				protected.DELETE("/contacts/:id", controllers.AdminDeleteContact)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}
