package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bphaengsrisara/web-board-backend/internal/models"
	"github.com/bphaengsrisara/web-board-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	tokenIssuer   = "web-board-api"
	tokenAudience = "web-board-client"
	tokenTTL      = 7 * 24 * time.Hour
)

// AuthService resolves usernames to users (registering on first sign-in) and
// issues/validates the signed access token.
type AuthService struct {
	userRepo repository.UserRepository
	secret   string
}

// NewAuthService creates a new auth service bound to the signing secret.
func NewAuthService(userRepo repository.UserRepository, secret string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   secret,
	}
}

// SignIn resolves the username to a user, creating one on first sign-in, and
// returns a signed token bound to the user's id and username.
//
// An empty username is rejected before any storage call. Persistence and
// signing failures come back as a generic UNAUTHORIZED error with the cause
// wrapped for logging only.
func (s *AuthService) SignIn(ctx context.Context, username string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", nil, models.NewValidationError("Username is required")
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return "", nil, models.NewAuthenticationError(err)
	}

	token, err := s.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, models.NewAuthenticationError(err)
	}

	return token, user, nil
}

// resolveUser finds the user by username or registers a new one. Two
// concurrent first sign-ins with the same brand-new username may race on the
// insert; the loser hits the unique index and resolves via a second lookup,
// so both callers converge on the same user id.
func (s *AuthService) resolveUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &models.User{Username: username}
	if createErr := s.userRepo.Create(ctx, created); createErr != nil {
		if user, retryErr := s.userRepo.GetByUsername(ctx, username); retryErr == nil {
			return user, nil
		}
		return nil, createErr
	}
	return created, nil
}

// GenerateToken signs a token carrying the user's id and username. It fails
// closed when the signing secret is unset.
func (s *AuthService) GenerateToken(userID uint, username string) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ValidateToken verifies the token's signature, expiry, issuer, and audience,
// and reconstructs the caller's identity from its claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, models.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.NewUnauthorizedError("Invalid token claims")
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
		return nil, models.NewUnauthorizedError("Invalid token issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
		return nil, models.NewUnauthorizedError("Invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, models.NewUnauthorizedError("Invalid subject claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, models.NewUnauthorizedError("Invalid user ID in token")
	}

	username, _ := claims["username"].(string)

	return &models.Identity{
		UserID:   uint(userID),
		Username: username,
	}, nil
}

// generateJTI creates a unique token id to distinguish otherwise identical tokens.
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
