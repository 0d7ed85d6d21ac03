package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/fitness-tracker/config"
	"github.com/Temutjin2k/fitness-tracker/internal/adapter/http/handler"
	"github.com/Temutjin2k/fitness-tracker/internal/adapter/http/middleware"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
	ws "github.com/Temutjin2k/fitness-tracker/pkg/wsHub"
)

const (
	serverIPAddress = "%s:%s"
	shutdownTimeout = 5 * time.Second
)

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	name string
	addr string
	log  logger.Logger
}

type handlers struct {
	health  *handler.Health
	workout *handler.Workout
}

func New(
	cfg config.Config,
	workoutService handler.WorkoutService,
	authService middleware.AuthService,
	hub *ws.ConnectionHub,
	logger logger.Logger,
) (*API, error) {
	if workoutService == nil {
		return nil, errors.New("workout service is required")
	}
	if authService == nil {
		return nil, errors.New("auth service is required")
	}
	if hub == nil {
		return nil, errors.New("websocket hub is required")
	}

	name := cfg.Mode.String()

	api := &API{
		mux: http.NewServeMux(),
		routes: &handlers{
			health:  handler.NewHealth(name, logger),
			workout: handler.NewWorkout(workoutService, hub, name, logger),
		},
		m:    middleware.NewMiddleware(authService, logger),
		name: name,
		addr: fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Services.TrackerService),
		log:  logger,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.withMiddleware(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return api, nil
}

// Handler returns the full handler chain, used by tests
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

// Run serves until ctx is cancelled, then shuts the server down
func (a *API) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info(wrap.WithAction(ctx, "http_server_start"), "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return a.Stop(context.WithoutCancel(ctx))
	}
}

// withMiddleware applies middlewares to the mux.
// Metrics goes last so that it sees the route pattern set by the mux.
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Auth(a.m.Metrics(a.name)(a.mux)))))
}
