package microservices

import (
	"context"
	"time"

	"github.com/Temutjin2k/fitness-tracker/config"
	repo "github.com/Temutjin2k/fitness-tracker/internal/adapter/postgres"
	rabbitadapter "github.com/Temutjin2k/fitness-tracker/internal/adapter/rabbit"
	"github.com/Temutjin2k/fitness-tracker/internal/service/tracker"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	"github.com/Temutjin2k/fitness-tracker/pkg/postgres"
	"github.com/Temutjin2k/fitness-tracker/pkg/rabbit"
	"github.com/Temutjin2k/fitness-tracker/pkg/trm"
)

const closeTimeout = 5 * time.Second

// infra - внешние зависимости сервиса; nil, если выключены в конфиге
type infra struct {
	db     *postgres.PostgreDB
	mq     *rabbit.RabbitMQ
	broker *rabbitadapter.WorkoutBroker
}

func openInfra(ctx context.Context, cfg config.Config, log logger.Logger, withQueue bool) (*infra, error) {
	in := &infra{}

	if cfg.Database.Enabled {
		db, err := postgres.New(ctx, cfg.Database)
		if err != nil {
			log.Error(ctx, "Failed to setup database", err)
			return nil, err
		}
		in.db = db
	}

	if cfg.RabbitMQ.Enabled {
		mq, err := rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			log.Error(ctx, "Failed to setup rabbitMQ", err)
			in.close(ctx, log)
			return nil, err
		}
		in.mq = mq

		brokerCfg := rabbitadapter.Config{Exchange: cfg.RabbitMQ.Exchange}
		if withQueue {
			brokerCfg.Queue = cfg.RabbitMQ.Queue
			brokerCfg.BindingKey = cfg.RabbitMQ.BindingKey
		}
		in.broker = rabbitadapter.NewWorkoutBroker(mq, brokerCfg, cfg.Mode.String(), log)

		if err := in.broker.Setup(ctx); err != nil {
			log.Error(ctx, "Failed to declare rabbitMQ topology", err)
			in.close(ctx, log)
			return nil, err
		}
	}

	return in, nil
}

// trackerOptions подключает историю и публикацию, если они включены
func (in *infra) trackerOptions(cfg config.Config) []tracker.Option {
	var opts []tracker.Option

	if in.db != nil {
		opts = append(opts, tracker.WithRepository(
			repo.NewWorkoutRepo(in.db.Pool, cfg.Mode.String()),
			trm.New(in.db.Pool),
		))
	}
	if in.broker != nil {
		opts = append(opts, tracker.WithPublisher(in.broker))
	}

	return opts
}

func (in *infra) close(ctx context.Context, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	if in.mq != nil {
		if err := in.mq.Close(ctx); err != nil {
			log.Warn(ctx, "Failed to gracefully close rabbitMQ", "error", err.Error())
		}
	}

	in.db.Close()
}
