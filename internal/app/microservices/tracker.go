package microservices

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Temutjin2k/fitness-tracker/config"
	"github.com/Temutjin2k/fitness-tracker/internal/adapter/http/server"
	"github.com/Temutjin2k/fitness-tracker/internal/service/auth"
	"github.com/Temutjin2k/fitness-tracker/internal/service/tracker"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	ws "github.com/Temutjin2k/fitness-tracker/pkg/wsHub"
)

// TrackerService - HTTP API, история в Postgres, сводки в RabbitMQ и websocket
type TrackerService struct {
	infra      *infra
	hub        *ws.ConnectionHub
	httpServer *server.API
	cfg        config.Config
	log        logger.Logger
}

func NewTracker(ctx context.Context, cfg config.Config, log logger.Logger) (*TrackerService, error) {
	in, err := openInfra(ctx, cfg, log, false)
	if err != nil {
		return nil, err
	}

	hub := ws.NewConnHub(log)
	opts := append(in.trackerOptions(cfg), tracker.WithNotifier(hub))
	trackerService := tracker.New(cfg.Mode.String(), log, opts...)

	tokenService := auth.NewTokenService(cfg.Auth.JWTSecret, log)

	httpServer, err := server.New(cfg, trackerService, tokenService, hub, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		in.close(ctx, log)
		return nil, err
	}

	return &TrackerService{
		infra:      in,
		hub:        hub,
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *TrackerService) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		s.hub.Close()
		s.infra.close(ctx, s.log)
		s.log.Info(ctx, "tracker service closed")
	}()

	s.log.Info(ctx, "tracker service has been started",
		"history", s.infra.db != nil,
		"publisher", s.infra.broker != nil,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.httpServer.Run(gctx)
	})

	return g.Wait()
}
