package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
	"github.com/Temutjin2k/fitness-tracker/pkg/metrics"
	"github.com/Temutjin2k/fitness-tracker/pkg/trm"
	"github.com/google/uuid"
)

type (
	WorkoutRepo interface {
		Save(ctx context.Context, rec *models.WorkoutRecord) error
		Get(ctx context.Context, id uuid.UUID) (*models.WorkoutRecord, error)
		List(ctx context.Context, limit int) ([]*models.WorkoutRecord, error)
	}

	SummaryPublisher interface {
		PublishSummary(ctx context.Context, msg models.SummaryMessage) error
	}

	// Notifier рассылает сводку подписчикам live-ленты; Broadcast не должен ждать сети
	Notifier interface {
		Broadcast(msg any) int
	}
)

// Service считает тренировки и, если настроено, сохраняет и публикует результат
type Service struct {
	name      string
	repo      WorkoutRepo
	txManager trm.TxManager
	publisher SummaryPublisher
	notifier  Notifier
	now       func() time.Time
	log       logger.Logger
}

type Option func(*Service)

// WithRepository включает историю; txManager может быть nil
func WithRepository(repo WorkoutRepo, txManager trm.TxManager) Option {
	return func(s *Service) {
		s.repo = repo
		s.txManager = txManager
	}
}

func WithPublisher(p SummaryPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(name string, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		name: name,
		now:  time.Now,
		log:  log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process: пакет -> тренировка -> сводка -> сохранение и публикация -> live-лента
func (s *Service) Process(ctx context.Context, pkg models.SensorPackage) (*models.WorkoutRecord, error) {
	const op = "Service.Process"
	ctx = wrap.WithAction(ctx, "process_workout")
	ctx = wrap.WithWorkout(ctx, "", pkg.WorkoutType)

	rec, err := s.process(ctx, pkg)
	metrics.RecordWorkout(s.name, metricsLabel(pkg.WorkoutType), err)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	ctx = wrap.WithWorkout(ctx, rec.ID.String(), pkg.WorkoutType)
	s.log.Debug(ctx, "workout processed",
		"distance_km", rec.Summary.Distance,
		"speed_kmh", rec.Summary.Speed,
		"calories_kcal", rec.Summary.Calories,
	)

	return rec, nil
}

func (s *Service) process(ctx context.Context, pkg models.SensorPackage) (*models.WorkoutRecord, error) {
	training, err := ReadPackage(pkg.WorkoutType, pkg.Data)
	if err != nil {
		return nil, err
	}

	info, err := models.ShowTrainingInfo(training)
	if err != nil {
		return nil, err
	}

	rec := models.NewWorkoutRecord(uuid.New(), training, info, s.now().UTC())

	if err := s.persist(ctx, rec); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Broadcast(rec.ToSummaryMessage())
	}

	return rec, nil
}

// persist сохраняет запись и публикует сводку в одной транзакции:
// если публикация не удалась, запись откатывается
func (s *Service) persist(ctx context.Context, rec *models.WorkoutRecord) error {
	if s.repo == nil && s.publisher == nil {
		return nil
	}

	save := func(ctx context.Context) error {
		if s.repo != nil {
			if err := s.repo.Save(ctx, rec); err != nil {
				return fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
			}
		}
		if s.publisher != nil {
			if err := s.publisher.PublishSummary(ctx, rec.ToSummaryMessage()); err != nil {
				return fmt.Errorf("%w: %w", types.ErrFailedToPublish, err)
			}
		}
		return nil
	}

	if s.txManager == nil {
		return save(ctx)
	}
	return s.txManager.Do(ctx, save)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.WorkoutRecord, error) {
	ctx = wrap.WithAction(ctx, "get_workout")
	if s.repo == nil {
		return nil, wrap.Error(ctx, types.ErrHistoryDisabled)
	}

	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*models.WorkoutRecord, error) {
	ctx = wrap.WithAction(ctx, "list_workouts")
	if s.repo == nil {
		return nil, wrap.Error(ctx, types.ErrHistoryDisabled)
	}

	recs, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return recs, nil
}

// metricsLabel не пускает произвольные строки в метки prometheus
func metricsLabel(workoutType string) string {
	if IsKnownType(workoutType) {
		return workoutType
	}
	return "unknown"
}
