package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/metrics"
	"github.com/Temutjin2k/fitness-tracker/pkg/postgres"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type WorkoutRepo struct {
	db      *pgxpool.Pool
	service string
}

func NewWorkoutRepo(db *pgxpool.Pool, service string) *WorkoutRepo {
	return &WorkoutRepo{db: db, service: service}
}

const workoutColumns = `id, workout_type, data, training_type, duration_h, distance_km,
            speed_kmh, calories_kcal, message, created_at`

func (r *WorkoutRepo) Save(ctx context.Context, rec *models.WorkoutRecord) (err error) {
	const op = "WorkoutRepo.Save"
	defer r.observe(op, time.Now(), &err)

	q := TxorDB(ctx, r.db)

	query := `INSERT INTO workouts (` + workoutColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err = q.Exec(ctx, query,
		rec.ID,
		rec.WorkoutType.String(),
		rec.Data,
		rec.Summary.TrainingType,
		rec.Summary.Duration,
		rec.Summary.Distance,
		rec.Summary.Speed,
		rec.Summary.Calories,
		rec.Message,
		rec.CreatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("%s: %w: %s", op, types.ErrWorkoutExists, rec.ID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *WorkoutRepo) Get(ctx context.Context, id uuid.UUID) (_ *models.WorkoutRecord, err error) {
	const op = "WorkoutRepo.Get"
	defer r.observe(op, time.Now(), &err)

	q := TxorDB(ctx, r.db)

	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1;`

	rec, err := scanWorkout(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, types.ErrWorkoutNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

// List возвращает последние limit тренировок, новые первыми
func (r *WorkoutRepo) List(ctx context.Context, limit int) (_ []*models.WorkoutRecord, err error) {
	const op = "WorkoutRepo.List"
	defer r.observe(op, time.Now(), &err)

	q := TxorDB(ctx, r.db)

	query := `SELECT ` + workoutColumns + ` FROM workouts
              ORDER BY created_at DESC, id
              LIMIT $1;`

	rows, err := q.Query(ctx, query, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	recs := make([]*models.WorkoutRecord, 0)
	for rows.Next() {
		rec, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return recs, nil
}

func scanWorkout(row pgx.Row) (*models.WorkoutRecord, error) {
	var (
		rec         models.WorkoutRecord
		workoutType string
	)

	err := row.Scan(
		&rec.ID,
		&workoutType,
		&rec.Data,
		&rec.Summary.TrainingType,
		&rec.Summary.Duration,
		&rec.Summary.Distance,
		&rec.Summary.Speed,
		&rec.Summary.Calories,
		&rec.Message,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.WorkoutType = types.WorkoutType(workoutType)
	return &rec, nil
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func (r *WorkoutRepo) observe(op string, start time.Time, err *error) {
	metrics.RecordDatabaseQuery(r.service, op, *err, time.Since(start))
}
