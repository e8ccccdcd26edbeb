package shift

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saati/saati/internal/event_bus"
	"github.com/saati/saati/pkg/user"
	"github.com/stretchr/testify/assert"
)

func withTestUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := user.WithUser(r.Context(), user.User{Id: 1})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestStartShiftConflict(t *testing.T) {
	service, _ := newTestService(event_bus.NewEventBus(), time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	handler := NewHandler(service)

	req := httptest.NewRequest("POST", "/api/shift", nil)
	rec := httptest.NewRecorder()
	withTestUser(http.HandlerFunc(handler.StartShift)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest("POST", "/api/shift", nil)
	rec = httptest.NewRecorder()
	withTestUser(http.HandlerFunc(handler.StartShift)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetCurrentShiftWhenNoneRunning(t *testing.T) {
	service, _ := newTestService(event_bus.NewEventBus(), time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	handler := NewHandler(service)

	req := httptest.NewRequest("GET", "/api/shift/current", nil)
	rec := httptest.NewRecorder()
	withTestUser(http.HandlerFunc(handler.GetCurrentShift)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCurrentShift(t *testing.T) {
	service, _ := newTestService(event_bus.NewEventBus(), time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	handler := NewHandler(service)

	req := httptest.NewRequest("POST", "/api/shift", nil)
	rec := httptest.NewRecorder()
	withTestUser(http.HandlerFunc(handler.StartShift)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest("PATCH", "/api/shift/current", strings.NewReader(`{"breakMinutes": 15}`))
	rec = httptest.NewRecorder()
	withTestUser(http.HandlerFunc(handler.UpdateCurrentShift)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"breakMinutes":15`)
}

func TestUpdateCurrentShiftWhenNoneRunning(t *testing.T) {
	service, _ := newTestService(event_bus.NewEventBus(), time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	handler := NewHandler(service)

	req := httptest.NewRequest("PATCH", "/api/shift/current", strings.NewReader(`{"breakMinutes": 15}`))
	rec := httptest.NewRecorder()
	withTestUser(http.HandlerFunc(handler.UpdateCurrentShift)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFinishShiftWhenNoneRunning(t *testing.T) {
	service, _ := newTestService(event_bus.NewEventBus(), time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	handler := NewHandler(service)

	req := httptest.NewRequest("PATCH", "/api/shift/current/status", nil)
	rec := httptest.NewRecorder()
	withTestUser(http.HandlerFunc(handler.FinishShift)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDiscardShiftWhenNoneRunning(t *testing.T) {
	service, _ := newTestService(event_bus.NewEventBus(), time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	handler := NewHandler(service)

	req := httptest.NewRequest("DELETE", "/api/shift/current", nil)
	rec := httptest.NewRecorder()
	withTestUser(http.HandlerFunc(handler.DiscardShift)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
