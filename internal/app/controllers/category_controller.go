package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/app/services"
	"github.com/unlockedcoding/catalog/internal/middleware"
)

// CategoryController handles category-related operations
type CategoryController struct {
	catalogService *services.CatalogService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(catalogService *services.CatalogService) *CategoryController {
	return &CategoryController{
		catalogService: catalogService,
	}
}

// GetAllCategories retrieves all categories
// @Summary List categories
// @Description Retrieves every course category with its live course count, ordered by rank then name
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]catalog.Category} "Categories retrieved successfully"
// @Router /categories [get]
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Categories()))
}

// GetCategoryByName retrieves one category and its courses
// @Summary Get category by name
// @Description Retrieves a category (case-insensitive) together with its courses in the listing projection
// @Tags categories
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} dto.APIResponse{data=dto.CategoryDetailResponse} "Category retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{name} [get]
func (c *CategoryController) GetCategoryByName(ctx *gin.Context) {
	name := ctx.Param("name")

	category, err := c.catalogService.CategoryByName(name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CategoryDetailResponse{
		Category: *category,
		Courses:  c.catalogService.CoursesByCategory(category.Name),
	}))
}
