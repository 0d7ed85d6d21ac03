package models

import (
	"math"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

const (
	lenStep     = 0.65 // длина шага в метрах
	swimLenStep = 1.38 // длина гребка в метрах
	mInKm       = 1000
	minInH      = 60
)

// Training - закрытый набор тренировок: Running, SportsWalking, Swimming.
type Training interface {
	Type() types.WorkoutType
	Name() string
	Hours() float64
	Distance() float64
	MeanSpeed() (float64, error)
	SpentCalories() (float64, error)
	// Values возвращает исходные данные в порядке полей пакета
	Values() []float64

	isTraining()
}

// Workout - общие поля и формулы по умолчанию
type Workout struct {
	Action    int     `json:"action"`     // шаги или гребки
	DurationH float64 `json:"duration_h"` // часы
	WeightKg  float64 `json:"weight_kg"`
}

func (w Workout) Hours() float64 {
	return w.DurationH
}

// Distance - дистанция в км
func (w Workout) Distance() float64 {
	return float64(w.Action) * lenStep / mInKm
}

// MeanSpeed - средняя скорость в км/ч
func (w Workout) MeanSpeed() (float64, error) {
	if w.DurationH == 0 {
		return 0, types.ErrDivisionByZero
	}
	return w.Distance() / w.DurationH, nil
}

func (w Workout) values() []float64 {
	return []float64{float64(w.Action), w.DurationH, w.WeightKg}
}

func (Workout) isTraining() {}

// Running - бег
type Running struct {
	Workout
}

func (Running) Type() types.WorkoutType { return types.RunningType }
func (Running) Name() string            { return "Running" }

func (r Running) Values() []float64 {
	return r.values()
}

func (r Running) SpentCalories() (float64, error) {
	const (
		coefSpeed = 18
		coefShift = 20
	)
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (coefSpeed*speed - coefShift) * r.WeightKg / mInKm * r.DurationH * minInH, nil
}

// SportsWalking - спортивная ходьба
type SportsWalking struct {
	Workout
	HeightCm float64 `json:"height_cm"`
}

func (SportsWalking) Type() types.WorkoutType { return types.WalkingType }
func (SportsWalking) Name() string            { return "SportsWalking" }

func (s SportsWalking) Values() []float64 {
	return append(s.values(), s.HeightCm)
}

func (s SportsWalking) SpentCalories() (float64, error) {
	const (
		coefWeight = 0.035
		coefSpeed  = 0.029
	)
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	if s.HeightCm == 0 {
		return 0, types.ErrDivisionByZero
	}
	return (coefWeight*s.WeightKg + floorDiv(speed*speed, s.HeightCm)*coefSpeed*s.WeightKg) * s.DurationH * minInH, nil
}

// Swimming - плавание
type Swimming struct {
	Workout
	PoolLengthM float64 `json:"pool_length_m"`
	PoolCount   int     `json:"pool_count"`
}

func (Swimming) Type() types.WorkoutType { return types.SwimmingType }
func (Swimming) Name() string            { return "Swimming" }

func (s Swimming) Values() []float64 {
	return append(s.values(), s.PoolLengthM, float64(s.PoolCount))
}

func (s Swimming) Distance() float64 {
	return float64(s.Action) * swimLenStep / mInKm
}

// MeanSpeed считается по длине бассейна, а не по гребкам
func (s Swimming) MeanSpeed() (float64, error) {
	if s.DurationH == 0 {
		return 0, types.ErrDivisionByZero
	}
	return s.PoolLengthM * float64(s.PoolCount) / mInKm / s.DurationH, nil
}

func (s Swimming) SpentCalories() (float64, error) {
	const (
		speedShift = 1.1
		coefWeight = 2
	)
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (speed + speedShift) * coefWeight * s.WeightKg, nil
}

// floorDiv - деление с округлением к минус бесконечности.
// Повторяет float-деление "//": остаток берётся через fmod и корректируется по знаку делителя.
// b != 0 проверяется вызывающей стороной.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1.0
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1.0
	}
	return floor
}
