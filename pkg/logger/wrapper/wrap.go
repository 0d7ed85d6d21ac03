package wrap

import (
	"context"
	"errors"
)

// Error wraps an error with the current LogCtx from the context
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	// If already wrapped, refresh logCtx and keep the new message chain
	var e *errorWithLogCtx
	if errors.As(err, &e) {
		return &errorWithLogCtx{
			err:    err,
			logCtx: mergeLogCtx(e.logCtx, fromCtx(ctx)),
		}
	}

	return &errorWithLogCtx{
		err:    err,
		logCtx: fromCtx(ctx),
	}
}

// mergeLogCtx prefers fields from top over base
func mergeLogCtx(base, top LogCtx) LogCtx {
	if top.Action != "" {
		base.Action = top.Action
	}
	if top.UserID != "" {
		base.UserID = top.UserID
	}
	if top.RequestID != "" {
		base.RequestID = top.RequestID
	}
	if top.WorkoutID != "" {
		base.WorkoutID = top.WorkoutID
	}
	if top.WorkoutType != "" {
		base.WorkoutType = top.WorkoutType
	}
	return base
}
