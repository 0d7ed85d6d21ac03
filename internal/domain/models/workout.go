package models

import (
	"time"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/google/uuid"
)

// SensorPackage - сырые данные от датчиков: код тренировки и значения по порядку полей
type SensorPackage struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// WorkoutRecord - посчитанная тренировка, как она хранится и отдаётся наружу
type WorkoutRecord struct {
	ID          uuid.UUID         `json:"workout_id"`
	WorkoutType types.WorkoutType `json:"workout_type"`
	Data        []float64         `json:"data"`
	Summary     InfoMessage       `json:"summary"`
	Message     string            `json:"message"`
	CreatedAt   time.Time         `json:"created_at"`
}

func NewWorkoutRecord(id uuid.UUID, t Training, info InfoMessage, createdAt time.Time) *WorkoutRecord {
	return &WorkoutRecord{
		ID:          id,
		WorkoutType: t.Type(),
		Data:        t.Values(),
		Summary:     info,
		Message:     info.Message(),
		CreatedAt:   createdAt,
	}
}

// SummaryMessage - сообщение в RabbitMQ и в websocket о посчитанной тренировке
type SummaryMessage struct {
	WorkoutID   uuid.UUID   `json:"workout_id"`
	WorkoutType string      `json:"workout_type"`
	Summary     InfoMessage `json:"summary"`
	Message     string      `json:"message"`
	Timestamp   time.Time   `json:"timestamp"`
}

func (r *WorkoutRecord) ToSummaryMessage() SummaryMessage {
	return SummaryMessage{
		WorkoutID:   r.ID,
		WorkoutType: r.WorkoutType.String(),
		Summary:     r.Summary,
		Message:     r.Message,
		Timestamp:   r.CreatedAt,
	}
}
