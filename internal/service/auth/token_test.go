package auth

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
)

func newTestService(secret string) *TokenService {
	return NewTokenService(secret, logger.New(io.Discard, "auth-test", logger.LevelError))
}

func TestIssueAndRoleCheck(t *testing.T) {
	s := newTestService("secret")

	token, err := s.Issue("athlete-1", types.RoleAthlete, time.Hour)
	require.NoError(t, err)

	user, err := s.RoleCheck(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "athlete-1", user.Subject)
	assert.Equal(t, types.RoleAthlete, user.Role)
	assert.False(t, user.IsAnonymous())
}

func TestIssue_Invalid(t *testing.T) {
	s := newTestService("secret")

	_, err := s.Issue("", types.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySubject)

	_, err = s.Issue("x", types.UserRole("DRIVER"), time.Hour)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := newTestService("one").Issue("a", types.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = newTestService("two").Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	s := newTestService("secret")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.Issue("a", types.RoleAthlete, time.Hour)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpToken)
}

func TestValidate_WrongAlgorithm(t *testing.T) {
	claims := Claims{
		Role: types.RoleAdmin.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "a",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = newTestService("secret").Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := newTestService("secret").RoleCheck(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
