package service

import (
	"context"
	"errors"
	"fmt"

	"edu-perfil/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService validates bearer tokens signed with the shared HS256 secret.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	secret []byte
	logger *zap.Logger
}

func NewAuthService(secret string, logger *zap.Logger) (AuthService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authServiceImpl{secret: []byte(secret), logger: logger}, nil
}

func (s *authServiceImpl) ValidateJWT(_ context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		snippet := tokenString[:min(len(tokenString), 20)] + "..."
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Warn("JWT token expired", zap.Error(err), zap.String("token_snippet", snippet))
		} else {
			s.logger.Warn("JWT validation failed", zap.Error(err), zap.String("token_snippet", snippet))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}
