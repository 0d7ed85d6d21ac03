package tracker

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(io.Discard, "tracker-test", logger.LevelError)
}

func TestDriver_PrintsDemoSummaries(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(New("tracker-test", testLogger()), &out, testLogger())

	require.NoError(t, d.Run(context.Background(), DemoPackages()))

	want := []string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestDriver_StopsAtFirstError(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(New("tracker-test", testLogger()), &out, testLogger())

	err := d.Run(context.Background(), []models.SensorPackage{
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "XXX", Data: []float64{1}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
	})
	require.ErrorIs(t, err, types.ErrUnknownWorkoutType)
	assert.ErrorContains(t, err, "package #2")
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestDriver_WriteError(t *testing.T) {
	d := NewDriver(New("tracker-test", testLogger()), failingWriter{}, testLogger())

	err := d.Run(context.Background(), DemoPackages())
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
