package microservices

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Temutjin2k/fitness-tracker/config"
	"github.com/Temutjin2k/fitness-tracker/internal/adapter/client"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/internal/service/auth"
	"github.com/Temutjin2k/fitness-tracker/internal/service/tracker"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
)

const (
	cliSubject  = "tracker-cli"
	cliTokenTTL = 5 * time.Minute
)

// CLIService печатает сводку по демо-пакетам в stdout
type CLIService struct {
	driver *tracker.Driver
	log    logger.Logger
}

func NewCLI(ctx context.Context, cfg config.Config, log logger.Logger) (*CLIService, error) {
	proc, err := newProcessor(cfg, log)
	if err != nil {
		return nil, err
	}

	return &CLIService{
		driver: tracker.NewDriver(proc, os.Stdout, log),
		log:    log,
	}, nil
}

// newProcessor: локальный расчёт или удалённый tracker-service, если задан TRACKER_REMOTE_URL
func newProcessor(cfg config.Config, log logger.Logger) (tracker.Processor, error) {
	if cfg.Remote.URL == "" {
		return tracker.New(cfg.Mode.String(), log), nil
	}

	token := cfg.Remote.Token
	if token == "" {
		var err error
		token, err = auth.NewTokenService(cfg.Auth.JWTSecret, log).Issue(cliSubject, types.RoleAthlete, cliTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to issue remote token: %w", err)
		}
	}

	return client.NewTrackerClient(cfg.Remote.URL, token, cfg.Remote.Timeout), nil
}

func (s *CLIService) Start(ctx context.Context) error {
	return s.driver.Run(ctx, tracker.DemoPackages())
}
