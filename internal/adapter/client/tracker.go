package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
)

var ErrRemoteRejected = errors.New("remote tracker rejected the request")

// TrackerClient отправляет пакеты в запущенный tracker-service вместо локального расчёта
type TrackerClient struct {
	http *resty.Client
}

func NewTrackerClient(baseURL, token string, timeout time.Duration) *TrackerClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	if token != "" {
		c.SetAuthToken(token)
	}

	return &TrackerClient{http: c}
}

type workoutResponse struct {
	Workout *models.WorkoutRecord `json:"workout"`
}

type errorResponse struct {
	Error any `json:"error"`
}

// Process - POST /workouts
func (c *TrackerClient) Process(ctx context.Context, pkg models.SensorPackage) (*models.WorkoutRecord, error) {
	const op = "TrackerClient.Process"
	ctx = wrap.WithAction(ctx, "remote_process_workout")

	var (
		result workoutResponse
		failed errorResponse
	)

	req := c.http.R().
		SetContext(ctx).
		SetBody(pkg).
		SetResult(&result).
		SetError(&failed)
	if id := wrap.GetRequestID(ctx); id != "" {
		req.SetHeader("X-Request-ID", id)
	}

	resp, err := req.Post("/workouts")
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	if resp.IsError() {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, statusError(resp.StatusCode(), failed.Error)))
	}

	if result.Workout == nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: empty response body", op))
	}

	return result.Workout, nil
}

// statusError keeps domain errors recognisable on the client side
func statusError(code int, detail any) error {
	switch code {
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w (%d): %v", ErrRemoteRejected, code, detail)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (%d): %v", types.ErrInvalidToken, code, detail)
	default:
		return fmt.Errorf("unexpected status %d: %v", code, detail)
	}
}
