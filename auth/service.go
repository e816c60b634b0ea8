// Package auth is responsible for account management and session issuance:
// user registration, credential verification, and signed time-limited JWTs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/croptrack-go/apperror"
	"github.com/user/croptrack-go/config"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// AuthService provides registration, credential verification, and session
// token issuance.
type AuthService struct {
	dbPool     *pgxpool.Pool
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(dbPool *pgxpool.Pool, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		dbPool:     dbPool,
		authConfig: authConfig,
	}
}

// Claims defines the JWT payload: the account's id plus the standard
// registered claims (expiry, issued-at).
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Register creates a new account with a bcrypt-hashed password. A taken
// username fails without mutating state.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:       req.Username,
		HashedPassword: string(hashedPassword),
	}

	createdUser, err := s.createUser(ctx, user)
	if err != nil {
		return nil, mapCreateUserError(err)
	}
	return createdUser, nil
}

// mapCreateUserError translates store failures on account creation. A unique
// violation means the username is taken: the losing insert fails without
// mutating state, so it surfaces as a client error rather than a store error.
func mapCreateUserError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperror.NewBadRequestError("username already exists", nil)
	}
	return apperror.NewDatabaseError("failed to create user", err)
}

// Login verifies credentials and returns a signed session token. Unknown
// username and wrong password produce the same error so the response does
// not reveal which one was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.getUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewBadRequestError("invalid credentials", nil)
		}
		log.Printf("database error during login lookup: %v", err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewBadRequestError("invalid credentials", nil)
	}

	token, expiresAt, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue session token", err)
	}

	return &TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresAt.Unix(),
	}, nil
}

// IssueToken mints a signed HS256 JWT carrying the account id, expiring
// after the configured access-token duration.
func (s *AuthService) IssueToken(userID int) (string, time.Time, error) {
	now := time.Now()
	expirationTime := now.Add(s.authConfig.AccessTokenDuration)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "croptrack",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// GetUserByID retrieves a live account by id. Used after token validation to
// confirm the account still exists.
func (s *AuthService) GetUserByID(ctx context.Context, userID int) (*User, error) {
	var user User
	query := `SELECT id, username, password, created_at FROM users WHERE id = $1`
	err := s.dbPool.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user by id", err)
	}
	return &user, nil
}

func (s *AuthService) createUser(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (username, password)
              VALUES ($1, $2)
              RETURNING id, created_at`
	err := s.dbPool.QueryRow(ctx, query, user.Username, user.HashedPassword).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) getUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	query := `SELECT id, username, password, created_at FROM users WHERE username = $1`
	err := s.dbPool.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
