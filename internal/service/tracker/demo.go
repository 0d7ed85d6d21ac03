package tracker

import (
	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

// DemoPackages - фиксированный набор тренировок для режима cli
func DemoPackages() []models.SensorPackage {
	return []models.SensorPackage{
		{WorkoutType: types.SwimmingType.String(), Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: types.RunningType.String(), Data: []float64{15000, 1, 75}},
		{WorkoutType: types.WalkingType.String(), Data: []float64{9000, 1, 75, 180}},
	}
}
