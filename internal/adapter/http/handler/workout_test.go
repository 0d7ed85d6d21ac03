package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	ws "github.com/Temutjin2k/fitness-tracker/pkg/wsHub"
)

type fakeService struct {
	processErr error
	records    map[uuid.UUID]*models.WorkoutRecord
	gotLimit   int
}

func (f *fakeService) Process(_ context.Context, pkg models.SensorPackage) (*models.WorkoutRecord, error) {
	if f.processErr != nil {
		return nil, f.processErr
	}
	rec := &models.WorkoutRecord{
		ID:          uuid.New(),
		WorkoutType: types.WorkoutType(pkg.WorkoutType),
		Data:        pkg.Data,
		Message:     "ok",
	}
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeService) Get(_ context.Context, id uuid.UUID) (*models.WorkoutRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, fmt.Errorf("get: %w", types.ErrWorkoutNotFound)
	}
	return rec, nil
}

func (f *fakeService) List(_ context.Context, limit int) ([]*models.WorkoutRecord, error) {
	f.gotLimit = limit
	out := make([]*models.WorkoutRecord, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func newTestWorkout(svc *fakeService) (*Workout, *http.ServeMux) {
	l := logger.New(io.Discard, "handler-test", logger.LevelError)
	h := NewWorkout(svc, ws.NewConnHub(l), "handler-test", l)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /workouts", h.Create)
	mux.HandleFunc("GET /workouts", h.List)
	mux.HandleFunc("GET /workouts/{workout_id}", h.Get)
	mux.HandleFunc("GET /ws/workouts", h.HandleWS)
	return h, mux
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestWorkout_Create(t *testing.T) {
	svc := &fakeService{records: map[uuid.UUID]*models.WorkoutRecord{}}
	_, mux := newTestWorkout(svc)

	w := do(mux, http.MethodPost, "/workouts", `{"workout_type":"RUN","data":[15000,1,75]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Workout models.WorkoutRecord `json:"workout"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.RunningType, resp.Workout.WorkoutType)
	assert.Equal(t, []float64{15000, 1, 75}, resp.Workout.Data)
}

func TestWorkout_CreateErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		processErr error
		want       int
	}{
		{name: "bad json", body: `{"workout_type":`, want: http.StatusBadRequest},
		{name: "unknown field", body: `{"workout_type":"RUN","data":[1],"x":1}`, want: http.StatusBadRequest},
		{name: "unknown type", body: `{"workout_type":"BIKE","data":[1]}`, want: http.StatusUnprocessableEntity},
		{name: "arity", body: `{"workout_type":"RUN","data":[1]}`, processErr: types.ErrArityMismatch, want: http.StatusUnprocessableEntity},
		{name: "division by zero", body: `{"workout_type":"RUN","data":[1,0,75]}`, processErr: types.ErrDivisionByZero, want: http.StatusUnprocessableEntity},
		{name: "non-finite result", body: `{"workout_type":"SWM","data":[720,1,1e308,25,40]}`, processErr: types.ErrNonFiniteResult, want: http.StatusUnprocessableEntity},
		{name: "database", body: `{"workout_type":"RUN","data":[1,1,75]}`, processErr: types.ErrDatabaseFailed, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{records: map[uuid.UUID]*models.WorkoutRecord{}, processErr: tt.processErr}
			_, mux := newTestWorkout(svc)

			w := do(mux, http.MethodPost, "/workouts", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestWorkout_Get(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{records: map[uuid.UUID]*models.WorkoutRecord{
		id: {ID: id, WorkoutType: types.SwimmingType},
	}}
	_, mux := newTestWorkout(svc)

	assert.Equal(t, http.StatusOK, do(mux, http.MethodGet, "/workouts/"+id.String(), "").Code)
	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodGet, "/workouts/"+uuid.NewString(), "").Code)
	assert.Equal(t, http.StatusBadRequest, do(mux, http.MethodGet, "/workouts/not-a-uuid", "").Code)
}

func TestWorkout_List(t *testing.T) {
	svc := &fakeService{records: map[uuid.UUID]*models.WorkoutRecord{}}
	_, mux := newTestWorkout(svc)

	w := do(mux, http.MethodGet, "/workouts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, defaultListLimit, svc.gotLimit)

	w = do(mux, http.MethodGet, "/workouts?limit=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, svc.gotLimit)

	assert.Equal(t, http.StatusUnprocessableEntity, do(mux, http.MethodGet, "/workouts?limit=abc", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(mux, http.MethodGet, "/workouts?limit=0", "").Code)
}

func TestWorkout_HandleWS(t *testing.T) {
	h, mux := newTestWorkout(&fakeService{records: map[uuid.UUID]*models.WorkoutRecord{}})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/workouts", nil)
	require.NoError(t, err)
	defer c.Close()

	require.Eventually(t, func() bool { return h.hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, h.hub.Broadcast(models.SummaryMessage{WorkoutType: "SWM"}))

	require.NoError(t, c.SetReadDeadline(time.Now().Add(time.Second)))
	var msg models.SummaryMessage
	require.NoError(t, c.ReadJSON(&msg))
	assert.Equal(t, "SWM", msg.WorkoutType)
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, GetCode(fmt.Errorf("x: %w", types.ErrNonIntegerCount)))
	assert.Equal(t, http.StatusUnprocessableEntity, GetCode(fmt.Errorf("x: %w", types.ErrNonFiniteResult)))
	assert.Equal(t, http.StatusNotFound, GetCode(types.ErrWorkoutNotFound))
	assert.Equal(t, http.StatusNotImplemented, GetCode(types.ErrHistoryDisabled))
	assert.Equal(t, http.StatusInternalServerError, GetCode(fmt.Errorf("boom")))
}
