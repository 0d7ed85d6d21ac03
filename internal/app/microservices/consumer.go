package microservices

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Temutjin2k/fitness-tracker/config"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/service/tracker"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
)

var ErrRabbitRequired = errors.New("consumer-service requires RABBITMQ_ENABLED=true")

// ConsumerService читает пакеты датчиков из RabbitMQ
type ConsumerService struct {
	infra   *infra
	tracker *tracker.Service
	cfg     config.Config
	log     logger.Logger
}

func NewConsumer(ctx context.Context, cfg config.Config, log logger.Logger) (*ConsumerService, error) {
	if !cfg.RabbitMQ.Enabled {
		return nil, ErrRabbitRequired
	}

	in, err := openInfra(ctx, cfg, log, true)
	if err != nil {
		return nil, err
	}

	return &ConsumerService{
		infra:   in,
		tracker: tracker.New(cfg.Mode.String(), log, in.trackerOptions(cfg)...),
		cfg:     cfg,
		log:     log,
	}, nil
}

func (s *ConsumerService) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		s.infra.close(ctx, s.log)
		s.log.Info(ctx, "consumer service closed")
	}()

	s.log.Info(ctx, "consumer service has been started", "queue", s.cfg.RabbitMQ.Queue)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.infra.broker.ConsumePackages(gctx, s.handle)
	})

	return g.Wait()
}

func (s *ConsumerService) handle(ctx context.Context, pkg models.SensorPackage) error {
	_, err := s.tracker.Process(ctx, pkg)
	return err
}
