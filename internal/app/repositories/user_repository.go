package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unlockedcoding/catalog/internal/app/models"
	"github.com/unlockedcoding/catalog/internal/pkg/apperrors"
	"github.com/unlockedcoding/catalog/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// UpsertByGoogleID creates a user on first sign-in or refreshes the stored
// profile and last-login timestamp on every subsequent one. The Google subject
// identifier is the stable key; email, name and picture follow whatever Google
// currently reports.
func (r *UserRepository) UpsertByGoogleID(ctx context.Context, user *models.User) (*models.User, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("google_id", "email", "name", "picture", "created_at", "updated_at", "last_login_at").
		Values(user.GoogleID, user.Email, user.Name, user.Picture,
			squirrel.Expr("NOW()"), squirrel.Expr("NOW()"), squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (google_id) DO UPDATE
			SET email = EXCLUDED.email,
			    name = EXCLUDED.name,
			    picture = EXCLUDED.picture,
			    updated_at = NOW(),
			    last_login_at = NOW()
			RETURNING id, google_id, email, name, picture, created_at, updated_at, last_login_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert user SQL")
		return nil, fmt.Errorf("failed to build upsert user query: %w", err)
	}

	stored := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stored.ID, &stored.GoogleID, &stored.Email, &stored.Name, &stored.Picture,
		&stored.CreatedAt, &stored.UpdatedAt, &stored.LastLoginAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			// Conflict on a column other than google_id (email collision
			// between two Google accounts).
			return nil, apperrors.NewCustomError(apperrors.ErrConflict, "email already linked to another account")
		}
		logger.Error().Err(err).Str("googleID", user.GoogleID).Msg("Error executing upsert user query")
		return nil, fmt.Errorf("error upserting user: %w", err)
	}

	return stored, nil
}

// GetByID retrieves a user by primary key
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "google_id", "email", "name", "picture", "created_at", "updated_at", "last_login_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.GoogleID, &user.Email, &user.Name, &user.Picture,
		&user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "google_id", "email", "name", "picture", "created_at", "updated_at", "last_login_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.GoogleID, &user.Email, &user.Name, &user.Picture,
		&user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}
