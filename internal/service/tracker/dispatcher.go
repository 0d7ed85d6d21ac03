package tracker

import (
	"fmt"
	"math"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

// maxCount - верхняя граница для шагов, гребков и кругов
const maxCount = math.MaxInt32

type reader struct {
	arity int
	build func(data []float64) (models.Training, error)
}

// readers - код тренировки -> конструктор. Таблица только для чтения.
var readers = map[types.WorkoutType]reader{
	types.SwimmingType: {arity: 5, build: readSwimming},
	types.RunningType:  {arity: 3, build: readRunning},
	types.WalkingType:  {arity: 4, build: readWalking},
}

// ReadPackage собирает тренировку из данных датчиков.
// Значения присваиваются по позиции: action, duration, weight, затем поля конкретного вида.
func ReadPackage(workoutType string, data []float64) (models.Training, error) {
	r, ok := readers[types.WorkoutType(workoutType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownWorkoutType, workoutType)
	}

	if len(data) != r.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", types.ErrArityMismatch, workoutType, r.arity, len(data))
	}

	return r.build(data)
}

// IsKnownType - есть ли код в таблице
func IsKnownType(workoutType string) bool {
	_, ok := readers[types.WorkoutType(workoutType)]
	return ok
}

func readWorkout(data []float64) (models.Workout, error) {
	action, err := toCount(data[0], "action")
	if err != nil {
		return models.Workout{}, err
	}

	return models.Workout{
		Action:    action,
		DurationH: data[1],
		WeightKg:  data[2],
	}, nil
}

func readRunning(data []float64) (models.Training, error) {
	w, err := readWorkout(data)
	if err != nil {
		return nil, err
	}
	return models.Running{Workout: w}, nil
}

func readWalking(data []float64) (models.Training, error) {
	w, err := readWorkout(data)
	if err != nil {
		return nil, err
	}
	return models.SportsWalking{Workout: w, HeightCm: data[3]}, nil
}

func readSwimming(data []float64) (models.Training, error) {
	w, err := readWorkout(data)
	if err != nil {
		return nil, err
	}

	poolCount, err := toCount(data[4], "pool_count")
	if err != nil {
		return nil, err
	}

	return models.Swimming{Workout: w, PoolLengthM: data[3], PoolCount: poolCount}, nil
}

func toCount(v float64, field string) (int, error) {
	if v < 0 || v > maxCount || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s = %v", types.ErrNonIntegerCount, field, v)
	}
	return int(v), nil
}
