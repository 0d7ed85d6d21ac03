package dto

import (
	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/validator"
)

// CreateWorkoutRequest - пакет от датчиков
type CreateWorkoutRequest struct {
	WorkoutType string    `json:"workout_type" example:"RUN"`
	Data        []float64 `json:"data" example:"15000,1,75"`
}

func (r *CreateWorkoutRequest) Validate(v *validator.Validator) {
	v.Check(r.WorkoutType != "", "workout_type", "must be provided")
	if r.WorkoutType != "" {
		v.Check(validator.PermittedValue(types.WorkoutType(r.WorkoutType),
			types.SwimmingType, types.RunningType, types.WalkingType),
			"workout_type", "must be one of SWM, RUN or WLK")
	}

	v.Check(len(r.Data) > 0, "data", "must be provided")
}

func (r *CreateWorkoutRequest) ToModel() models.SensorPackage {
	return models.SensorPackage{
		WorkoutType: r.WorkoutType,
		Data:        r.Data,
	}
}
