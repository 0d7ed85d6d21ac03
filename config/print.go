package config

import (
	"context"

	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
)

// PrintConfig logs the effective configuration without secrets
func PrintConfig(ctx context.Context, cfg *Config, log logger.Logger) {
	ctx = wrap.WithAction(ctx, "print_config")

	log.Debug(ctx, "configuration loaded",
		"mode", cfg.Mode,
		"log_level", cfg.Log.Level,
		"database_enabled", cfg.Database.Enabled,
		"database_host", cfg.Database.Host,
		"database_port", cfg.Database.Port,
		"rabbitmq_enabled", cfg.RabbitMQ.Enabled,
		"rabbitmq_host", cfg.RabbitMQ.Host,
		"rabbitmq_exchange", cfg.RabbitMQ.Exchange,
		"rabbitmq_queue", cfg.RabbitMQ.Queue,
		"tracker_port", cfg.Services.TrackerService,
		"remote_url", cfg.Remote.URL,
	)
}
