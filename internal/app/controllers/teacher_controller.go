package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/app/services"
	"github.com/unlockedcoding/catalog/internal/middleware"
)

// TeacherController handles instructor-related operations
type TeacherController struct {
	catalogService *services.CatalogService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(catalogService *services.CatalogService) *TeacherController {
	return &TeacherController{
		catalogService: catalogService,
	}
}

// GetUniqueTeachers retrieves the per-instructor corpus fold
// @Summary List teachers
// @Description Retrieves one summary per instructor (course count and categories), ordered by course count and capped for the homepage
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]catalog.TeacherSummary} "Teachers retrieved successfully"
// @Router /teachers [get]
func (c *TeacherController) GetUniqueTeachers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.UniqueTeachers()))
}

// GetTeacherProfiles retrieves every instructor profile
// @Summary List teacher profiles
// @Description Retrieves every instructor profile record
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]catalog.TeacherProfile} "Profiles retrieved successfully"
// @Router /teachers/profiles [get]
func (c *TeacherController) GetTeacherProfiles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.TeacherProfiles()))
}

// GetTeacherByName retrieves one instructor profile with their courses
// @Summary Get teacher
// @Description Retrieves an instructor profile by slug or name (fuzzy match) together with their courses
// @Tags teachers
// @Produce json
// @Param name path string true "Instructor slug or name"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherDetailResponse} "Teacher retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{name} [get]
func (c *TeacherController) GetTeacherByName(ctx *gin.Context) {
	profile, err := c.catalogService.TeacherByName(ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TeacherDetailResponse{
		Teacher: *profile,
		Courses: c.catalogService.CoursesByTeacher(profile.ID),
	}))
}
