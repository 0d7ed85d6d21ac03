package tracker

import (
	"context"
	"fmt"
	"io"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
)

type Processor interface {
	Process(ctx context.Context, pkg models.SensorPackage) (*models.WorkoutRecord, error)
}

// Driver печатает сводку по каждому пакету, по строке на пакет, в порядке списка
type Driver struct {
	proc Processor
	out  io.Writer
	log  logger.Logger
}

func NewDriver(proc Processor, out io.Writer, log logger.Logger) *Driver {
	return &Driver{
		proc: proc,
		out:  out,
		log:  log,
	}
}

// Run останавливается на первой ошибке
func (d *Driver) Run(ctx context.Context, packages []models.SensorPackage) error {
	ctx = wrap.WithAction(ctx, "print_workouts")

	for i, pkg := range packages {
		rec, err := d.proc.Process(ctx, pkg)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("package #%d: %w", i+1, err))
		}

		if _, err := fmt.Fprintln(d.out, rec.Message); err != nil {
			return wrap.Error(ctx, fmt.Errorf("failed to write summary: %w", err))
		}
	}

	d.log.Debug(ctx, "all workouts printed", "count", len(packages))
	return nil
}
