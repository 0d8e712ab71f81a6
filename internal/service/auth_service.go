package service

import (
	"context"
	"errors"
	"time"

	"revup/internal/access"
	"revup/internal/config"
	"revup/internal/dto"
	"revup/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Login matches username and password exactly against the users table and
// issues an access token carrying the account's role.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	role, err := s.repo.FindRole(ctx, req.Username, req.Password)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, userErr(ErrInvalidCredentials, "Invalid username or password.")
	}
	if err != nil {
		return nil, err
	}
	if access.ParseRole(role) == access.RoleUnknown {
		return nil, userErr(ErrInvalidCredentials, "Account has no valid role.")
	}

	token, err := s.generateToken(req.Username, role, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Username:    req.Username,
		Role:        role,
	}, nil
}

func (s *authService) generateToken(username, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
