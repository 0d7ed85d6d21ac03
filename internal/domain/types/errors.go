package types

import "errors"

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrArityMismatch      = errors.New("argument count does not match workout type")
	ErrNonIntegerCount    = errors.New("count value must be a non-negative integer")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrNonFiniteResult    = errors.New("workout result is not a finite number")

	ErrWorkoutNotFound = errors.New("workout not found")
	ErrWorkoutExists   = errors.New("workout already exists")
	ErrHistoryDisabled = errors.New("workout history is not configured")
	ErrDatabaseFailed  = errors.New("database operation failed")
	ErrFailedToPublish = errors.New("failed to publish workout summary")
	ErrInvalidToken    = errors.New("invalid token")
)
