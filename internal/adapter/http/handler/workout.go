package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Temutjin2k/fitness-tracker/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
	"github.com/Temutjin2k/fitness-tracker/pkg/metrics"
	"github.com/Temutjin2k/fitness-tracker/pkg/validator"
	ws "github.com/Temutjin2k/fitness-tracker/pkg/wsHub"
)

const defaultListLimit = 50

type WorkoutService interface {
	Process(ctx context.Context, pkg models.SensorPackage) (*models.WorkoutRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*models.WorkoutRecord, error)
	List(ctx context.Context, limit int) ([]*models.WorkoutRecord, error)
}

type Workout struct {
	service  WorkoutService
	hub      *ws.ConnectionHub
	upgrader websocket.Upgrader
	name     string
	l        logger.Logger
}

func NewWorkout(service WorkoutService, hub *ws.ConnectionHub, serviceName string, l logger.Logger) *Workout {
	return &Workout{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		name: serviceName,
		l:    l,
	}
}

// Create godoc
// @Summary      Process a sensor package
// @Description  Computes distance, mean speed and calories for a workout package and stores the result
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateWorkoutRequest true "Sensor package"
// @Success      201 {object} models.WorkoutRecord
// @Failure      400 {object} map[string]interface{} "Bad request"
// @Failure      401 {object} map[string]interface{} "Unauthorized"
// @Failure      422 {object} map[string]interface{} "Validation or calculation error"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Security     BearerAuth
// @Router       /workouts [post]
func (h *Workout) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_workout")

	var req dto.CreateWorkoutRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Warn(ctx, "failed to read request JSON data", "error", err.Error())
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	rec, err := h.service.Process(ctx, req.ToModel())
	if err != nil {
		code := GetCode(err)
		if code >= http.StatusInternalServerError {
			h.l.Error(wrap.ErrorCtx(ctx, err), "failed to process workout", err)
		} else {
			h.l.Warn(wrap.ErrorCtx(ctx, err), "workout rejected", "error", err.Error())
		}
		errorResponse(w, code, err.Error())
		return
	}

	if err := writeJSON(w, http.StatusCreated, envelope{"workout": rec}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(wrap.WithWorkout(ctx, rec.ID.String(), rec.WorkoutType.String()), "workout processed successfully")
}

// List godoc
// @Summary      List processed workouts
// @Description  Returns the latest processed workouts, newest first
// @Tags         workouts
// @Produce      json
// @Param        limit query int false "Max number of workouts" default(50)
// @Success      200 {object} map[string]interface{} "Workouts"
// @Failure      401 {object} map[string]interface{} "Unauthorized"
// @Failure      422 {object} map[string]interface{} "Validation error"
// @Failure      501 {object} map[string]interface{} "History is not configured"
// @Security     BearerAuth
// @Router       /workouts [get]
func (h *Workout) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_workouts")

	limit, err := readInt(r.URL.Query(), "limit", defaultListLimit)
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	v.Check(limit > 0, "limit", "must be greater than zero")
	v.Check(limit <= 500, "limit", "must not be more than 500")
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	recs, err := h.service.List(ctx, limit)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list workouts", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"workouts": recs, "count": len(recs)}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// Get godoc
// @Summary      Get a processed workout
// @Tags         workouts
// @Produce      json
// @Param        workout_id path string true "Workout ID" format(uuid)
// @Success      200 {object} models.WorkoutRecord
// @Failure      400 {object} map[string]interface{} "Invalid id"
// @Failure      401 {object} map[string]interface{} "Unauthorized"
// @Failure      404 {object} map[string]interface{} "Not found"
// @Security     BearerAuth
// @Router       /workouts/{workout_id} [get]
func (h *Workout) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_workout")

	id, err := uuid.Parse(r.PathValue("workout_id"))
	if err != nil {
		h.l.Warn(ctx, "invalid workout uuid format")
		errorResponse(w, http.StatusBadRequest, "invalid workout uuid format")
		return
	}

	rec, err := h.service.Get(ctx, id)
	if err != nil {
		code := GetCode(err)
		if code >= http.StatusInternalServerError {
			h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get workout", err)
		}
		errorResponse(w, code, err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"workout": rec}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// HandleWS godoc
// @Summary      Live workout feed
// @Description  WebSocket stream of every processed workout summary
// @Tags         workouts
// @Router       /ws/workouts [get]
func (h *Workout) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "ws_workouts_subscribe")

	c, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		h.l.Warn(ctx, "websocket upgrade failed", "error", err.Error())
		return
	}

	conn := ws.NewConn(context.WithoutCancel(ctx), uuid.New(), c)
	if err := h.hub.Add(conn); err != nil {
		h.l.Error(ctx, "failed to register websocket connection", err)
		_ = conn.Close()
		return
	}

	gauge := metrics.WebSocketConnectionsGauge.WithLabelValues(h.name)
	gauge.Inc()
	defer gauge.Dec()

	h.l.Debug(ctx, "websocket subscriber connected", "conn_id", conn.ID())

	// подписчики ничего не шлют, читаем только чтобы заметить закрытие
	err = conn.Listen(func(map[string]any) error { return nil })
	_ = h.hub.Delete(conn.ID())

	h.l.Debug(ctx, "websocket subscriber disconnected", "conn_id", conn.ID(), "reason", err.Error())
}
