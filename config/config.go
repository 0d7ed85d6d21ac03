package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/configparser"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
)

// Flags
var (
	modeFlag = flag.String("mode", string(types.CLIMode), "application mode: cli, tracker-service, consumer-service")
)

// Errors
var (
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode types.ServiceMode

		Log      LogConfig
		Database DatabaseConfig
		RabbitMQ RabbitMQConfig
		Services ServicesConfig
		Auth     Auth
		Remote   RemoteConfig
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"INFO"`
	}

	DatabaseConfig struct {
		Enabled  bool   `env:"DATABASE_ENABLED" default:"false"`
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"tracker_user"`
		Password string `env:"DATABASE_PASSWORD" default:"tracker_pass"`
		Database string `env:"DATABASE_DATABASE" default:"tracker_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`         // максимум открытых соединений
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`          // минимум соединений в пуле
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"` // макс. "время жизни" соединения
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`  // макс. "время простоя" соединения
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`

		Exchange   string `env:"RABBITMQ_EXCHANGE" default:"workout_topic"`
		Queue      string `env:"RABBITMQ_QUEUE" default:"workout_packages"`
		BindingKey string `env:"RABBITMQ_BINDING_KEY" default:"workout.package.*"`
	}

	ServicesConfig struct {
		TrackerService string `env:"SERVICES_TRACKER_SERVICE" default:"3000"`
	}

	Auth struct {
		JWTSecret string `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
	}

	// RemoteConfig - если URL задан, cli отправляет пакеты в запущенный tracker-service
	RemoteConfig struct {
		URL     string        `env:"TRACKER_REMOTE_URL"`
		Token   string        `env:"TRACKER_REMOTE_TOKEN"`
		Timeout time.Duration `env:"TRACKER_REMOTE_TIMEOUT" default:"5s"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&pool_max_conns=%d&pool_min_conns=%d&pool_max_conn_lifetime=%s&pool_max_conn_idle_time=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		c.MaxConns,
		c.MinConns,
		c.MaxConnLifetime,
		c.MaxConnIdleTime,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Parsing flags
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	mode := types.CLIMode
	if modeFlag != nil && *modeFlag != "" {
		mode = types.ServiceMode(*modeFlag)
	}

	cfg.Mode = mode

	return nil
}

// Validate checks values that can't be expressed by tags
func (c *Config) Validate() error {
	switch c.Mode {
	case types.CLIMode, types.TrackerService, types.ConsumerService:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	if !logger.ValidateLogLevel(c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	return nil
}
