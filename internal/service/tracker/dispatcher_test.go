package tracker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

func TestReadPackage_RoundTrip(t *testing.T) {
	for _, pkg := range DemoPackages() {
		t.Run(pkg.WorkoutType, func(t *testing.T) {
			training, err := ReadPackage(pkg.WorkoutType, pkg.Data)
			require.NoError(t, err)

			assert.Equal(t, types.WorkoutType(pkg.WorkoutType), training.Type())
			assert.Equal(t, pkg.Data, training.Values())
		})
	}
}

func TestReadPackage_Fields(t *testing.T) {
	training, err := ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	swim, ok := training.(models.Swimming)
	require.True(t, ok)
	assert.Equal(t, 720, swim.Action)
	assert.Equal(t, 1.0, swim.DurationH)
	assert.Equal(t, 80.0, swim.WeightKg)
	assert.Equal(t, 25.0, swim.PoolLengthM)
	assert.Equal(t, 40, swim.PoolCount)

	training, err = ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)

	walk, ok := training.(models.SportsWalking)
	require.True(t, ok)
	assert.Equal(t, 180.0, walk.HeightCm)
}

func TestReadPackage_Errors(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
		want error
	}{
		{name: "unknown code", code: "BIKE", data: []float64{1, 1, 1}, want: types.ErrUnknownWorkoutType},
		{name: "lowercase code", code: "run", data: []float64{1, 1, 1}, want: types.ErrUnknownWorkoutType},
		{name: "empty code", code: "", data: nil, want: types.ErrUnknownWorkoutType},
		{name: "too few", code: "RUN", data: []float64{15000, 1}, want: types.ErrArityMismatch},
		{name: "too many", code: "WLK", data: []float64{9000, 1, 75, 180, 1}, want: types.ErrArityMismatch},
		{name: "swimming short", code: "SWM", data: []float64{720, 1, 80, 25}, want: types.ErrArityMismatch},
		{name: "fractional action", code: "RUN", data: []float64{15000.5, 1, 75}, want: types.ErrNonIntegerCount},
		{name: "negative action", code: "RUN", data: []float64{-1, 1, 75}, want: types.ErrNonIntegerCount},
		{name: "NaN action", code: "RUN", data: []float64{math.NaN(), 1, 75}, want: types.ErrNonIntegerCount},
		{name: "fractional pool count", code: "SWM", data: []float64{720, 1, 80, 25, 40.5}, want: types.ErrNonIntegerCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPackage(tt.code, tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIsKnownType(t *testing.T) {
	assert.True(t, IsKnownType("SWM"))
	assert.True(t, IsKnownType("RUN"))
	assert.True(t, IsKnownType("WLK"))
	assert.False(t, IsKnownType("swm"))
}
