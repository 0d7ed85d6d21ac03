package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
	"github.com/Temutjin2k/fitness-tracker/pkg/metrics"
	"github.com/Temutjin2k/fitness-tracker/pkg/rabbit"
)

const (
	publishRetries   = 3
	publishRetryWait = 500 * time.Millisecond
	reconnectWait    = 2 * time.Second
)

type Config struct {
	Exchange   string
	Queue      string
	BindingKey string
}

// WorkoutBroker публикует сводки и читает пакеты датчиков
type WorkoutBroker struct {
	client  *rabbit.RabbitMQ
	cfg     Config
	service string
	l       logger.Logger
}

func NewWorkoutBroker(client *rabbit.RabbitMQ, cfg Config, service string, l logger.Logger) *WorkoutBroker {
	return &WorkoutBroker{
		client:  client,
		cfg:     cfg,
		service: service,
		l:       l,
	}
}

// Setup объявляет exchange, очередь и привязку
func (r *WorkoutBroker) Setup(ctx context.Context) error {
	const op = "WorkoutBroker.Setup"

	if err := r.client.DeclareTopicExchange(r.cfg.Exchange); err != nil {
		ctx = wrap.WithAction(ctx, "declare_exchange")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to declare exchange: %w", op, err))
	}

	if r.cfg.Queue == "" {
		return nil
	}

	q, err := r.client.Channel.QueueDeclare(
		r.cfg.Queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ctx = wrap.WithAction(ctx, "declare_queue")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to declare queue: %w", op, err))
	}

	if err := r.client.Channel.QueueBind(
		q.Name,
		r.cfg.BindingKey,
		r.cfg.Exchange,
		false,
		nil,
	); err != nil {
		ctx = wrap.WithAction(ctx, "bind_queue")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to bind queue: %w", op, err))
	}

	return nil
}

// SummaryRoutingKey - ключ для сводки: workout.summary.<CODE>
func SummaryRoutingKey(workoutType string) string {
	return fmt.Sprintf("workout.summary.%s", workoutType)
}

// PublishSummary публикует сводку посчитанной тренировки
func (r *WorkoutBroker) PublishSummary(ctx context.Context, msg models.SummaryMessage) error {
	const op = "WorkoutBroker.PublishSummary"
	ctx = wrap.WithAction(ctx, "publish_workout_summary")

	body, err := json.Marshal(msg)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal message: %w", op, err))
	}

	pub := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     msg.WorkoutID.String(),
		Body:          body,
		Timestamp:     time.Now(),
		CorrelationId: wrap.GetRequestID(ctx),
	}

	err = retry(publishRetries, publishRetryWait, func() error {
		if err := r.client.EnsureConnection(ctx); err != nil {
			return err
		}
		return r.client.Channel.PublishWithContext(
			ctx,
			r.cfg.Exchange,
			SummaryRoutingKey(msg.WorkoutType),
			false, // mandatory
			false, // immediate
			pub,
		)
	})
	metrics.RecordRabbitMQPublish(r.service, r.cfg.Exchange, err)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish: %w", op, err))
	}

	return nil
}

// PackageHandlerFunc обрабатывает один пакет датчиков
type PackageHandlerFunc func(ctx context.Context, pkg models.SensorPackage) error

// ConsumePackages слушает очередь пакетов и передаёт их в fn, пока не отменён ctx.
// При обрыве соединения переподключается.
func (r *WorkoutBroker) ConsumePackages(ctx context.Context, fn PackageHandlerFunc) error {
	const op = "WorkoutBroker.ConsumePackages"
	ctx = wrap.WithAction(ctx, "consume_workout_packages")

	for {
		if ctx.Err() != nil {
			r.l.Debug(ctx, "consume packages stopped by context")
			return nil
		}

		// Проверяем и восстанавливаем соединение
		if err := r.client.EnsureConnection(ctx); err != nil {
			r.l.Error(ctx, "ensure connection failed", err, "op", op)
			if !sleepCtx(ctx, reconnectWait) {
				return nil
			}
			continue
		}

		if err := r.Setup(ctx); err != nil {
			r.l.Error(ctx, "setup failed", err, "op", op)
			if !sleepCtx(ctx, reconnectWait) {
				return nil
			}
			continue
		}

		msgs, err := r.client.Channel.Consume(r.cfg.Queue, "", false, false, false, false, nil)
		if err != nil {
			r.l.Error(ctx, "consume failed", err, "op", op)
			if !sleepCtx(ctx, reconnectWait) {
				return nil
			}
			continue
		}

		r.l.Info(ctx, "start consuming workout packages", "queue", r.cfg.Queue)

	consumeLoop:
		for {
			select {
			case <-ctx.Done():
				r.l.Info(ctx, "workout package consumer shutting down", "op", op)
				return nil

			case msg, ok := <-msgs:
				if !ok {
					r.l.Warn(ctx, "message channel closed, reconnecting...", "op", op)
					break consumeLoop
				}

				r.handleDelivery(ctx, fn, msg)
			}
		}
	}
}

// handleDelivery: битый JSON и доменные ошибки отклоняются без requeue,
// ошибки БД и публикации возвращаются в очередь
func (r *WorkoutBroker) handleDelivery(ctx context.Context, fn PackageHandlerFunc, msg amqp.Delivery) {
	ctx = wrap.WithRequestID(ctx, msg.CorrelationId)

	var pkg models.SensorPackage
	if err := json.Unmarshal(msg.Body, &pkg); err != nil {
		r.l.Warn(ctx, "decode failed, message rejected", "error", err.Error())
		metrics.RecordRabbitMQConsume(r.service, r.cfg.Queue, err)
		_ = msg.Nack(false, false)
		return
	}

	ctx = wrap.WithWorkout(ctx, "", pkg.WorkoutType)

	err := fn(ctx, pkg)
	metrics.RecordRabbitMQConsume(r.service, r.cfg.Queue, err)

	switch {
	case err == nil:
		if err := msg.Ack(false); err != nil {
			r.l.Warn(ctx, "ack failed", "error", err.Error())
		}
	case isRecoverableError(err):
		r.l.Error(wrap.ErrorCtx(ctx, err), "failed to handle package, requeue", err)
		_ = msg.Nack(false, true)
	default:
		r.l.Warn(wrap.WithAction(wrap.ErrorCtx(ctx, err), types.ActionWorkoutRejected),
			"package rejected", "error", err.Error())
		_ = msg.Nack(false, false)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
