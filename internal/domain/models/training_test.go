package models

import (
	"math"
	"testing"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrainings() map[string]Training {
	return map[string]Training{
		"swimming": Swimming{Workout: Workout{Action: 720, DurationH: 1, WeightKg: 80}, PoolLengthM: 25, PoolCount: 40},
		"running":  Running{Workout: Workout{Action: 15000, DurationH: 1, WeightKg: 75}},
		"walking":  SportsWalking{Workout: Workout{Action: 9000, DurationH: 1, WeightKg: 75}, HeightCm: 180},
	}
}

func TestTraining_SampleValues(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		speed    float64
		calories float64
	}{
		{name: "swimming", distance: 0.9936, speed: 1.0, calories: 336.0},
		{name: "running", distance: 9.75, speed: 9.75, calories: 699.75},
		{name: "walking", distance: 5.85, speed: 5.85, calories: 157.5},
	}

	trainings := sampleTrainings()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := trainings[tt.name]

			assert.InDelta(t, tt.distance, tr.Distance(), 1e-9)

			speed, err := tr.MeanSpeed()
			require.NoError(t, err)
			assert.InDelta(t, tt.speed, speed, 1e-9)

			calories, err := tr.SpentCalories()
			require.NoError(t, err)
			assert.InDelta(t, tt.calories, calories, 1e-9)
		})
	}
}

func TestSwimming_OverridesDistanceAndSpeed(t *testing.T) {
	s := Swimming{Workout: Workout{Action: 1000, DurationH: 2, WeightKg: 70}, PoolLengthM: 50, PoolCount: 20}

	assert.InDelta(t, 1.38, s.Distance(), 1e-12)
	assert.InDelta(t, 0.65, s.Workout.Distance(), 1e-12)

	speed, err := s.MeanSpeed()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, speed, 1e-12)
}

func TestTraining_ZeroDuration(t *testing.T) {
	for name, tr := range map[string]Training{
		"running":  Running{Workout: Workout{Action: 100, WeightKg: 70}},
		"walking":  SportsWalking{Workout: Workout{Action: 100, WeightKg: 70}, HeightCm: 170},
		"swimming": Swimming{Workout: Workout{Action: 100, WeightKg: 70}, PoolLengthM: 25, PoolCount: 2},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tr.MeanSpeed()
			assert.ErrorIs(t, err, types.ErrDivisionByZero)

			_, err = tr.SpentCalories()
			assert.ErrorIs(t, err, types.ErrDivisionByZero)
		})
	}
}

func TestSportsWalking_ZeroHeight(t *testing.T) {
	w := SportsWalking{Workout: Workout{Action: 9000, DurationH: 1, WeightKg: 75}}

	_, err := w.SpentCalories()
	assert.ErrorIs(t, err, types.ErrDivisionByZero)
}

func TestSportsWalking_FloorDivisionInCalories(t *testing.T) {
	// 39000 шагов за час: скорость 25.35 км/ч, 25.35^2 // 180 = 3
	w := SportsWalking{Workout: Workout{Action: 39000, DurationH: 1, WeightKg: 80}, HeightCm: 180}

	calories, err := w.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, (0.035*80+3*0.029*80)*60, calories, 1e-9)
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{a: 34.2225, b: 180, want: 0},
		{a: 7, b: 2, want: 3},
		{a: -7, b: 2, want: -4},
		{a: 7, b: -2, want: -4},
		{a: -7, b: -2, want: 3},
		{a: 7.5, b: 2.5, want: 3},
		{a: -0.5, b: 180, want: -1},
		{a: 642.6225, b: 180, want: 3},
	}

	for _, tt := range tests {
		got := floorDiv(tt.a, tt.b)
		assert.Equal(t, tt.want, got, "floorDiv(%v, %v)", tt.a, tt.b)
	}
}

func TestFloorDiv_SignedZero(t *testing.T) {
	assert.False(t, math.Signbit(floorDiv(1, 180)))
	assert.True(t, math.Signbit(floorDiv(0, -5)))
	assert.Equal(t, -1.0, floorDiv(1, -180))
}

func TestTraining_Pure(t *testing.T) {
	for name, tr := range sampleTrainings() {
		t.Run(name, func(t *testing.T) {
			first, err := ShowTrainingInfo(tr)
			require.NoError(t, err)
			second, err := ShowTrainingInfo(tr)
			require.NoError(t, err)

			assert.Equal(t, math.Float64bits(first.Distance), math.Float64bits(second.Distance))
			assert.Equal(t, math.Float64bits(first.Speed), math.Float64bits(second.Speed))
			assert.Equal(t, math.Float64bits(first.Calories), math.Float64bits(second.Calories))
		})
	}
}

func TestTraining_Values(t *testing.T) {
	trainings := sampleTrainings()

	assert.Equal(t, []float64{720, 1, 80, 25, 40}, trainings["swimming"].Values())
	assert.Equal(t, []float64{15000, 1, 75}, trainings["running"].Values())
	assert.Equal(t, []float64{9000, 1, 75, 180}, trainings["walking"].Values())
}

func BenchmarkShowTrainingInfo(b *testing.B) {
	tr := sampleTrainings()["walking"]

	for b.Loop() {
		_, _ = ShowTrainingInfo(tr)
	}
}
