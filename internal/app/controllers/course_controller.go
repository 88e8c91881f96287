package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/app/services"
	"github.com/unlockedcoding/catalog/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	catalogService *services.CatalogService
}

// NewCourseController creates a new CourseController
func NewCourseController(catalogService *services.CatalogService) *CourseController {
	return &CourseController{
		catalogService: catalogService,
	}
}

// GetAllCourses retrieves all courses in the listing projection
// @Summary List courses
// @Description Retrieves every course in the light projection, optionally filtered by subsection
// @Tags courses
// @Produce json
// @Param subsection query string false "Filter by subsection name (case-insensitive)"
// @Success 200 {object} dto.APIResponse{data=[]catalog.LightCourse} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	if subsection := ctx.Query("subsection"); subsection != "" {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.CoursesBySubsection(subsection)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.LightCourses()))
}

// GetHomepageCourses retrieves the courses flagged for the homepage
// @Summary List homepage courses
// @Description Retrieves the courses flagged for the homepage carousel
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]catalog.Course} "Homepage courses retrieved successfully"
// @Router /courses/homepage [get]
func (c *CourseController) GetHomepageCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.HomepageCourses()))
}

// GetSubsections retrieves all distinct subsection names
// @Summary List subsections
// @Description Retrieves the sorted set of distinct subsection names across all courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Subsections retrieved successfully"
// @Router /courses/subsections [get]
func (c *CourseController) GetSubsections(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Subsections()))
}

// GetCourseByName retrieves one course by category and exact name
// @Summary Get course
// @Description Retrieves a full course record by category (case-insensitive) and exact course name
// @Tags courses
// @Produce json
// @Param name path string true "Category name"
// @Param courseName path string true "Course name"
// @Success 200 {object} dto.APIResponse{data=catalog.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /categories/{name}/courses/{courseName} [get]
func (c *CourseController) GetCourseByName(ctx *gin.Context) {
	course, err := c.catalogService.CourseByName(ctx.Param("name"), ctx.Param("courseName"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetSimilarCourses retrieves courses related to one course
// @Summary List similar courses
// @Description Retrieves up to limit courses from the same category, excluding the named course, ordered by rank then rating
// @Tags courses
// @Produce json
// @Param name path string true "Category name"
// @Param courseName path string true "Course name to exclude"
// @Param limit query int false "Maximum results (default 4)"
// @Success 200 {object} dto.APIResponse{data=[]catalog.LightCourse} "Similar courses retrieved successfully"
// @Router /categories/{name}/courses/{courseName}/similar [get]
func (c *CourseController) GetSimilarCourses(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit")
			errorDetail = errorDetail.WithDetails("limit must be a non-negative number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	similar := c.catalogService.SimilarCourses(ctx.Param("name"), ctx.Param("courseName"), limit)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(similar))
}

// GetCourseByTeacher retrieves one course by instructor and exact name
// @Summary Get course by teacher
// @Description Retrieves a full course record by instructor slug and exact course name
// @Tags courses
// @Produce json
// @Param name path string true "Instructor slug or name"
// @Param courseName path string true "Course name"
// @Success 200 {object} dto.APIResponse{data=catalog.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /teachers/{name}/courses/{courseName} [get]
func (c *CourseController) GetCourseByTeacher(ctx *gin.Context) {
	course, err := c.catalogService.CourseByTeacherAndName(ctx.Param("name"), ctx.Param("courseName"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}
