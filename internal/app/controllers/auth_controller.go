// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/app/services"
	"github.com/unlockedcoding/catalog/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// sanitizeRedirect keeps post-login redirects on the site: only relative paths
// survive, everything else collapses to the root.
func sanitizeRedirect(redirect string) string {
	if redirect == "" || !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		return "/"
	}
	return redirect
}

// GoogleCallback completes the Google OAuth sign-in
// @Summary Google OAuth callback
// @Description Exchanges the authorization code returned by Google, upserts the user and issues an access token
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param redirect query string false "Site-relative path to return to after login"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid code"
// @Failure 401 {object} dto.ErrorResponse "Code rejected by Google"
// @Failure 503 {object} dto.ErrorResponse "Authentication not configured"
// @Router /auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing authorization code")
		errorDetail = errorDetail.WithField("code")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.authService.LoginWithGoogle(ctx.Request.Context(), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"token":    response.Token,
		"user":     response.User,
		"redirect": sanitizeRedirect(ctx.Query("redirect")),
	}))
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Description Retrieves the profile of the user identified by the access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := userID.(int64)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}
