package auth

import (
	"context"
	"crypto/subtle"
	"os"
	"time"

	autherrors "go-plastindo/internal/auth/errors"
	"go-plastindo/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Config memegang kredensial admin tunggal situs. Diisi dari environment
// saat wiring; service tidak membaca env sendiri agar mudah dites.
type Config struct {
	AdminUsername     string
	AdminPasswordHash string // bcrypt hash
	AccessTokenTTL    time.Duration
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (accessToken string, resp AuthResponse, err error)
	Me(ctx context.Context, username, role string) (AuthResponse, error)
}

type service struct {
	cfg    Config
	logger *zap.Logger
}

func NewService(cfg Config, logger ...*zap.Logger) Service {
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = 24 * time.Hour
	}

	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{cfg: cfg, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (string, AuthResponse, error) {
	s.logger.Debug("login requested", zap.String("username", username))

	// 1. Cocokkan username admin
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) != 1 {
		s.logger.Warn("login failed: unknown username", zap.String("username", username))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed: wrong password", zap.String("username", username))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// 3. Generate token
	accessToken, err := s.generateToken(username, rbac.RoleAdmin, s.cfg.AccessTokenTTL)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("username", username))

	return accessToken, AuthResponse{
		Username: username,
		Role:     rbac.RoleAdmin,
	}, nil
}

func (s *service) Me(ctx context.Context, username, role string) (AuthResponse, error) {
	if username == "" {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}
	return AuthResponse{Username: username, Role: role}, nil
}

func (s *service) generateToken(username, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ConfigFromEnv membangun Config dari environment. ADMIN_PASSWORD_HASH
// dipakai jika ada; kalau hanya ADMIN_PASSWORD yang diisi, hash dibuat
// sekali di sini supaya perbandingannya tetap lewat bcrypt.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AccessTokenTTL:    24 * time.Hour,
	}

	if cfg.AdminPasswordHash == "" {
		if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
			if err != nil {
				return Config{}, err
			}
			cfg.AdminPasswordHash = string(hashed)
		}
	}

	return cfg, nil
}
