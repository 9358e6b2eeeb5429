package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"energyai/internal/models"
	"energyai/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already exists")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService handles signup, login, and token parsing. The signing key is
// injected from config at startup.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
}

func NewAuthService(repo repository.Authorization, signingKey string) *AuthService {
	return &AuthService{authRepo: repo, signingKey: []byte(signingKey)}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// SignUp hashes the password, creates the user, and returns it with a fresh
// token. A duplicate email surfaces as ErrEmailTaken.
func (s *AuthService) SignUp(name, email, password string) (models.User, string, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("invalid password: %w", err)
	}

	existing, err := s.authRepo.GetByEmail(email)
	if err != nil {
		return models.User{}, "", err
	}
	if existing != nil {
		return models.User{}, "", ErrEmailTaken
	}

	id, err := s.authRepo.Create(name, email, hash)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueToken(id)
	if err != nil {
		return models.User{}, "", err
	}
	return models.User{ID: id, Name: name, Email: email}, token, nil
}

// SignIn validates credentials and returns the user plus a signed JWT.
func (s *AuthService) SignIn(email, password string) (models.User, string, error) {
	u, err := s.authRepo.GetByEmail(email)
	if err != nil {
		return models.User{}, "", err
	}
	if u == nil {
		return models.User{}, "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.User{}, "", ErrInvalidPassword
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return *u, token, nil
}

// ParseToken parses a JWT and returns the embedded user ID.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// UpdateName changes a user's display name.
func (s *AuthService) UpdateName(userID int, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is empty")
	}
	return s.authRepo.UpdateName(userID, name)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
