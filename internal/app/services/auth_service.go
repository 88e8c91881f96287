package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/unlockedcoding/catalog/internal/app/models"
	"github.com/unlockedcoding/catalog/internal/app/models/dto"
	"github.com/unlockedcoding/catalog/internal/app/repositories"
	"github.com/unlockedcoding/catalog/internal/googleauth"
	"github.com/unlockedcoding/catalog/internal/pkg/apperrors"
	"github.com/unlockedcoding/catalog/internal/pkg/auth"
)

// AuthService handles the Google sign-in flow: code exchange, user upsert and
// token issuance. When the service was built without a database or OAuth
// credentials every call fails with ErrAuthUnavailable instead of panicking,
// so the catalog endpoints keep serving.
type AuthService struct {
	userRepo     *repositories.UserRepository
	googleClient *googleauth.Client
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService. userRepo and googleClient may be
// nil when authentication is not configured.
func NewAuthService(
	userRepo *repositories.UserRepository,
	googleClient *googleauth.Client,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		googleClient: googleClient,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Enabled reports whether the sign-in flow can operate.
func (s *AuthService) Enabled() bool {
	return s.userRepo != nil && s.googleClient != nil
}

// LoginWithGoogle completes the OAuth callback: exchanges the code, upserts
// the user record and issues an access token.
func (s *AuthService) LoginWithGoogle(ctx context.Context, code string) (*dto.AuthResponse, error) {
	if !s.Enabled() {
		return nil, apperrors.ErrAuthUnavailable
	}
	if code == "" {
		return nil, apperrors.NewBadRequestError("authorization code is required")
	}

	profile, err := s.googleClient.Exchange(ctx, code)
	if err != nil {
		if errors.Is(err, googleauth.ErrExchangeFailed) || errors.Is(err, googleauth.ErrNoIDToken) {
			s.logger.Warn().Err(err).Msg("Google code exchange rejected")
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("Google code exchange failed")
		return nil, err
	}

	user, err := s.userRepo.UpsertByGoogleID(ctx, &models.User{
		GoogleID: profile.Sub,
		Email:    profile.Email,
		Name:     profile.Name,
		Picture:  profile.Picture,
	})
	if err != nil {
		return nil, err
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to sign access token")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User signed in with Google")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.UserResponse{
			ID:      user.ID,
			Email:   user.Email,
			Name:    user.Name,
			Picture: user.Picture,
		},
	}, nil
}

// CurrentUser loads the profile of the authenticated user.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	if s.userRepo == nil {
		return nil, apperrors.ErrAuthUnavailable
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	}, nil
}
