package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/unlockedcoding/catalog/internal/app/controllers"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	categoryController *controllers.CategoryController,
	courseController *controllers.CourseController,
	teacherController *controllers.TeacherController,
	blogController *controllers.BlogController,
	siteController *controllers.SiteController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Category routes (public access)
	categories := v1.Group("/categories")
	{
		categories.GET("", categoryController.GetAllCategories)
		categories.GET("/:name", categoryController.GetCategoryByName)
		categories.GET("/:name/courses/:courseName", courseController.GetCourseByName)
		categories.GET("/:name/courses/:courseName/similar", courseController.GetSimilarCourses)
	}

	// Course routes (public access)
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/homepage", courseController.GetHomepageCourses)
		courses.GET("/subsections", courseController.GetSubsections)
	}

	// Teacher routes (public access)
	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.GetUniqueTeachers)
		teachers.GET("/profiles", teacherController.GetTeacherProfiles)
		teachers.GET("/:name", teacherController.GetTeacherByName)
		teachers.GET("/:name/courses/:courseName", courseController.GetCourseByTeacher)
	}

	// Blog routes (public access)
	blog := v1.Group("/blog")
	{
		blog.GET("", blogController.GetAllBlogPosts)
		blog.GET("/:id", blogController.GetBlogPostByID)
	}

	// Site data routes (public access)
	site := v1.Group("/site")
	{
		site.GET("/reviews", siteController.GetReviews)
		site.GET("/placements", siteController.GetPlacements)
	}

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.GET("/google/callback", authController.GoogleCallback)

		authenticated := auth.Group("")
		authenticated.Use(authMiddleware.JWTAuth())
		{
			authenticated.GET("/me", authController.Me)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
