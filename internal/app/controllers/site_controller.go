package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/app/services"
)

// SiteController serves the site-wide data files
type SiteController struct {
	catalogService *services.CatalogService
}

// NewSiteController creates a new SiteController
func NewSiteController(catalogService *services.CatalogService) *SiteController {
	return &SiteController{
		catalogService: catalogService,
	}
}

// GetReviews retrieves the student reviews payload
// @Summary Get reviews
// @Description Retrieves the site-wide student reviews with aggregate statistics
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse{data=catalog.ReviewsData} "Reviews retrieved successfully"
// @Router /site/reviews [get]
func (c *SiteController) GetReviews(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Reviews()))
}

// GetPlacements retrieves the placement statistics payload
// @Summary Get placements
// @Description Retrieves placement companies and aggregate placement statistics
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse{data=catalog.PlacementsData} "Placements retrieved successfully"
// @Router /site/placements [get]
func (c *SiteController) GetPlacements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Placements()))
}
