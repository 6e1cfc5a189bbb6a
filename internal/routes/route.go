package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/profiled/internal/container"
	"github.com/joshua-takyi/profiled/internal/handlers"
	"github.com/joshua-takyi/profiled/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "profiled-api",
		})
	})

	users := r.Group("/users")
	{
		// public routes
		users.POST("", handlers.Signup(container.UserService))
		users.POST("/login", handlers.Login(container.UserService))
	}

	protected := users.Group("")
	protected.Use(middleware.AuthMiddleware(container.Config.JWTSecret))
	{
		protected.POST("/logout", handlers.Logout())

		protected.GET("/:id", handlers.GetUser(container.UserService))
		protected.PATCH("/:id", handlers.UpdateUser(container.UserService))
		protected.DELETE("/:id", handlers.DeleteUser(container.UserService))

		protected.POST("/:id/skills", handlers.AddSkill(container.ProfileService))
		protected.PATCH("/:id/skills/:skillId", handlers.UpdateSkill(container.ProfileService))
		protected.DELETE("/:id/skills/:skillId", handlers.RemoveSkill(container.ProfileService))

		protected.POST("/:id/projects", handlers.AddProject(container.ProfileService))
		protected.PATCH("/:id/projects/:projectId", handlers.UpdateProject(container.ProfileService))
		protected.DELETE("/:id/projects/:projectId", handlers.RemoveProject(container.ProfileService))

		protected.POST("/:id/education", handlers.AddEducation(container.ProfileService))
		protected.PATCH("/:id/education/:educationId", handlers.UpdateEducation(container.ProfileService))
		protected.DELETE("/:id/education/:educationId", handlers.RemoveEducation(container.ProfileService))

		protected.POST("/:id/companies", handlers.AddCompany(container.ProfileService))
		protected.PATCH("/:id/companies/:companyId", handlers.UpdateCompany(container.ProfileService))
		protected.DELETE("/:id/companies/:companyId", handlers.RemoveCompany(container.ProfileService))

		protected.POST("/:id/socialLinks", handlers.AddSocialLink(container.ProfileService))
		protected.PATCH("/:id/socialLinks/:linkId", handlers.UpdateSocialLink(container.ProfileService))
		protected.DELETE("/:id/socialLinks/:linkId", handlers.RemoveSocialLink(container.ProfileService))

		protected.PATCH("/:id/headline-description", handlers.AddHeadlineAndDescription(container.ProfileService))
		protected.PATCH("/:id/upload-profile-picture", handlers.UploadProfilePicture(container.ProfileService))
		protected.PATCH("/:id/upload-background-picture", handlers.UploadBackgroundPicture(container.ProfileService))
	}

	return r
}
