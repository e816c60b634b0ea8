package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/croptrack-go/apperror"
)

// Service describes profile lookups as the handlers see them.
type Service interface {
	GetProfile(ctx context.Context, userID int) (*ProfileResponse, error)
}

// UserService provides profile lookups backed by Postgres.
type UserService struct {
	db *pgxpool.Pool
}

// NewUserService creates a new UserService.
func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// GetProfile retrieves an account's profile by id.
func (s *UserService) GetProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	query := `SELECT id, username, created_at FROM users WHERE id = $1`

	var profile ProfileResponse
	err := s.db.QueryRow(ctx, query, userID).Scan(&profile.ID, &profile.Username, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user profile", err)
	}

	return &profile, nil
}
