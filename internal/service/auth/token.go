package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
)

const issuer = "fitness-tracker"

// Claims - payload access токена
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет HS256 токены.
// Пользователей не хранит: subject и роль берутся из самого токена.
type TokenService struct {
	secret []byte
	now    func() time.Time
	log    logger.Logger
}

func NewTokenService(secret string, log logger.Logger) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
		log:    log,
	}
}

// Issue подписывает токен для subject с ролью role, живущий ttl
func (s *TokenService) Issue(subject string, role types.UserRole, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}
	if !isKnownRole(role) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	issuedAt := s.now().UTC()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Validate validates the given JWT token string, returning the custom claims if valid.
func (s *TokenService) Validate(ctx context.Context, token string) (*Claims, error) {
	ctx = wrap.WithAction(ctx, "validate_token")

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, wrap.Error(ctx, ErrExpToken)
		}
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %w", ErrInvalidToken, err))
	}
	if !parsed.Valid {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	if claims.Subject == "" {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: missing 'sub' in token claims", ErrInvalidToken))
	}
	if !isKnownRole(types.UserRole(claims.Role)) {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %q", ErrInvalidRole, claims.Role))
	}

	return claims, nil
}

// RoleCheck проверяет токен и возвращает пользователя из него
func (s *TokenService) RoleCheck(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Subject: claims.Subject,
		Role:    types.UserRole(claims.Role),
	}, nil
}

func isKnownRole(role types.UserRole) bool {
	switch role {
	case types.RoleAthlete, types.RoleAdmin:
		return true
	default:
		return false
	}
}
