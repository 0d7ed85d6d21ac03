package auth

import (
	"errors"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

var (
	ErrInvalidToken = types.ErrInvalidToken
	ErrExpToken     = errors.New("expired token")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmptySubject = errors.New("empty subject")
)
