package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Temutjin2k/fitness-tracker/pkg/validator"
)

func TestCreateWorkoutRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateWorkoutRequest
		wantKey string
	}{
		{name: "valid", req: CreateWorkoutRequest{WorkoutType: "RUN", Data: []float64{15000, 1, 75}}},
		{name: "empty type", req: CreateWorkoutRequest{Data: []float64{1}}, wantKey: "workout_type"},
		{name: "unknown type", req: CreateWorkoutRequest{WorkoutType: "BIKE", Data: []float64{1}}, wantKey: "workout_type"},
		{name: "no data", req: CreateWorkoutRequest{WorkoutType: "SWM"}, wantKey: "data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			tt.req.Validate(v)

			if tt.wantKey == "" {
				assert.True(t, v.Valid(), v.Errors)
				return
			}
			assert.Contains(t, v.Errors, tt.wantKey)
		})
	}
}

func TestCreateWorkoutRequest_ToModel(t *testing.T) {
	req := CreateWorkoutRequest{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}}
	pkg := req.ToModel()

	assert.Equal(t, "WLK", pkg.WorkoutType)
	assert.Equal(t, []float64{9000, 1, 75, 180}, pkg.Data)
}
