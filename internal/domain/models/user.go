package models

import (
	"context"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

// User - владелец токена, достаточно subject и роли
type User struct {
	Subject string         `json:"subject"`
	Role    types.UserRole `json:"role"`
}

func AnonymousUser() *User {
	return &User{}
}

func (u *User) IsAnonymous() bool {
	return u.Subject == "" && u.Role == ""
}

type userCtxKey struct{}

func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext возвращает nil, если пользователя нет в контексте
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userCtxKey{}).(*User)
	return u
}
