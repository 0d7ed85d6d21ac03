package models

import (
	"fmt"
	"math"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

// InfoMessage - итоговая сводка по тренировке
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"speed_kmh"`
	Calories     float64 `json:"calories_kcal"`
}

// Message - строка для вывода пользователю, все числа с тремя знаками после запятой
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType,
		m.Duration,
		m.Distance,
		m.Speed,
		m.Calories,
	)
}

// ShowTrainingInfo считает все показатели тренировки
func ShowTrainingInfo(t Training) (InfoMessage, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("%s mean speed: %w", t.Name(), err)
	}

	calories, err := t.SpentCalories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("%s calories: %w", t.Name(), err)
	}

	info := InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Hours(),
		Distance:     t.Distance(),
		Speed:        speed,
		Calories:     calories,
	}
	if err := info.checkFinite(); err != nil {
		return InfoMessage{}, fmt.Errorf("%s: %w", t.Name(), err)
	}
	return info, nil
}

// checkFinite: конечные входные данные всё равно могут переполниться в ±Inf или NaN
func (m InfoMessage) checkFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"duration", m.Duration},
		{"distance", m.Distance},
		{"speed", m.Speed},
		{"calories", m.Calories},
	}
	for _, f := range fields {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return fmt.Errorf("%w: %s = %v", types.ErrNonFiniteResult, f.name, f.value)
		}
	}
	return nil
}
