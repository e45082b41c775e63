package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/store"
)

// AuthService handles login, logout, and JWT token operations on top of
// the directory store.
type AuthService struct {
	store     *store.Store
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(st *store.Store, jwtSecret string) *AuthService {
	return &AuthService{store: st, jwtSecret: []byte(jwtSecret)}
}

// Login delegates credential checking to the store and returns a signed
// JWT token string plus the established session user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	ok, err := s.store.Login(ctx, email, password)
	if err != nil {
		return "", nil, fmt.Errorf("store login: %w", err)
	}
	if !ok {
		return "", nil, domain.ErrUnauthorized
	}

	user := s.store.Snapshot().Session
	if user == nil {
		return "", nil, fmt.Errorf("login succeeded but no session user")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate jwt: %w", err)
	}
	return token, user, nil
}

// Logout clears the store session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Logout(ctx)
}

// ValidateToken parses and validates a JWT token string.
// Returns the user ID from the sub claim.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	return userID, nil
}

// UserByID retrieves a directory user by id.
func (s *AuthService) UserByID(id int64) (*domain.User, error) {
	user, found := s.store.Snapshot().UserByID(id)
	if !found {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (s *AuthService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
