package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yusufoz/coursehub/internal/app/controllers"
	"github.com/yusufoz/coursehub/internal/app/models/dto"
	"github.com/yusufoz/coursehub/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public; mutations
// run behind the identity gate.
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	courses.Use(authMiddleware.OptionalIdentity())
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		coursesProtected := courses.Group("")
		coursesProtected.Use(authMiddleware.RequireIdentity())
		{
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.PUT("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
