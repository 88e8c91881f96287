package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/app/services"
	"github.com/unlockedcoding/catalog/internal/middleware"
)

// BlogController handles blog-related operations
type BlogController struct {
	catalogService *services.CatalogService
}

// NewBlogController creates a new BlogController
func NewBlogController(catalogService *services.CatalogService) *BlogController {
	return &BlogController{
		catalogService: catalogService,
	}
}

// GetAllBlogPosts retrieves all blog posts
// @Summary List blog posts
// @Description Retrieves every blog post
// @Tags blog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]catalog.BlogPost} "Blog posts retrieved successfully"
// @Router /blog [get]
func (c *BlogController) GetAllBlogPosts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.BlogPosts()))
}

// GetBlogPostByID retrieves one blog post
// @Summary Get blog post
// @Description Retrieves a blog post by its identifier
// @Tags blog
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} dto.APIResponse{data=catalog.BlogPost} "Blog post retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Blog post not found"
// @Router /blog/{id} [get]
func (c *BlogController) GetBlogPostByID(ctx *gin.Context) {
	post, err := c.catalogService.BlogPostByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}
