package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to the standard error envelope. The
// message on a CustomError survives the mapping; everything else gets the
// generic text for its category.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := func(fallback string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrBlogPostNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message("Invalid credentials")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message("Token expired")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInvalidToken, message("Invalid token")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrAuthUnavailable):
		c.JSON(503, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeAuthUnavailable, message("Authentication is not configured")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists")),
			Timestamp: time.Now(),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			Timestamp: time.Now(),
		})
	}
}
