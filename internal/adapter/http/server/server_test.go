package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/fitness-tracker/config"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/internal/service/auth"
	"github.com/Temutjin2k/fitness-tracker/internal/service/tracker"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	ws "github.com/Temutjin2k/fitness-tracker/pkg/wsHub"
)

func newTestAPI(t *testing.T) (*API, *auth.TokenService) {
	t.Helper()

	l := logger.New(io.Discard, "server-test", logger.LevelError)
	cfg := config.Config{
		Mode:     types.TrackerService,
		Services: config.ServicesConfig{TrackerService: "0"},
	}

	tokens := auth.NewTokenService("test-secret", l)
	hub := ws.NewConnHub(l)
	svc := tracker.New("server-test", l, tracker.WithNotifier(hub))

	api, err := New(cfg, svc, tokens, hub, l)
	require.NoError(t, err)
	return api, tokens
}

func TestAPI_Routes(t *testing.T) {
	api, tokens := newTestAPI(t)
	h := api.Handler()

	athlete, err := tokens.Issue("athlete-1", types.RoleAthlete, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		token  string
		want   int
	}{
		{name: "health", method: http.MethodGet, target: "/health", want: http.StatusOK},
		{name: "metrics", method: http.MethodGet, target: "/metrics", want: http.StatusOK},
		{name: "swagger doc", method: http.MethodGet, target: "/swagger/doc.json", want: http.StatusOK},
		{name: "create without token", method: http.MethodPost, target: "/workouts", body: `{"workout_type":"RUN","data":[15000,1,75]}`, want: http.StatusUnauthorized},
		{name: "create", method: http.MethodPost, target: "/workouts", body: `{"workout_type":"RUN","data":[15000,1,75]}`, token: athlete, want: http.StatusCreated},
		{name: "create arity", method: http.MethodPost, target: "/workouts", body: `{"workout_type":"RUN","data":[15000,1]}`, token: athlete, want: http.StatusUnprocessableEntity},
		{name: "create zero duration", method: http.MethodPost, target: "/workouts", body: `{"workout_type":"SWM","data":[720,0,80,25,40]}`, token: athlete, want: http.StatusUnprocessableEntity},
		{name: "create overflow", method: http.MethodPost, target: "/workouts", body: `{"workout_type":"SWM","data":[720,1,1e308,25,40]}`, token: athlete, want: http.StatusUnprocessableEntity},
		{name: "create tiny duration", method: http.MethodPost, target: "/workouts", body: `{"workout_type":"RUN","data":[15000,1e-310,75]}`, token: athlete, want: http.StatusUnprocessableEntity},
		{name: "history disabled", method: http.MethodGet, target: "/workouts", token: athlete, want: http.StatusNotImplemented},
		{name: "bad token", method: http.MethodGet, target: "/workouts", token: "garbage", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.token != "" {
				r.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestAPI_RunStopsOnCancel(t *testing.T) {
	api, _ := newTestAPI(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- api.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
