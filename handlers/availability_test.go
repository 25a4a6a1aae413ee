package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appointmentRepo "tubtime/database/repository/appointment"
	"tubtime/models"
	"tubtime/services/appointment"
	"tubtime/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeAppointmentService returns canned results for handler tests.
type fakeAppointmentService struct {
	checkResult scheduling.Result
	checkErr    error
	createAppt  *models.Appointment
	createErr   error
	getAppt     *models.Appointment
	getErr      error
	updateAppt  *models.Appointment
	updateErr   error
	listAppts   []models.Appointment
	listErr     error
}

func (f *fakeAppointmentService) CheckSlot(_ context.Context, _, _, _ string) (scheduling.Result, error) {
	return f.checkResult, f.checkErr
}

func (f *fakeAppointmentService) Create(_ context.Context, _ models.CreateAppointmentRequest) (*models.Appointment, error) {
	return f.createAppt, f.createErr
}

func (f *fakeAppointmentService) GetByID(_ context.Context, _ string) (*models.Appointment, error) {
	return f.getAppt, f.getErr
}

func (f *fakeAppointmentService) Update(_ context.Context, _ string, _ models.UpdateAppointmentRequest) (*models.Appointment, error) {
	return f.updateAppt, f.updateErr
}

func (f *fakeAppointmentService) List(_ context.Context, _ appointmentRepo.Filter) ([]models.Appointment, error) {
	return f.listAppts, f.listErr
}

func availabilityRouter(svc appointment.AppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(svc, zap.NewNop())
	r.GET("/api/availability", h.CheckAvailability)
	return r
}

func TestCheckAvailability_MissingParameters(t *testing.T) {
	r := availabilityRouter(&fakeAppointmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2024-06-03", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["available"] != false || body["reason"] != "Missing parameters" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestCheckAvailability_Available(t *testing.T) {
	r := availabilityRouter(&fakeAppointmentService{
		checkResult: scheduling.Result{Available: true},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/availability?date=2024-06-03&time=09:00&serviceType=Inspection", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res scheduling.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !res.Available || res.Reason != "" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestCheckAvailability_Conflict(t *testing.T) {
	r := availabilityRouter(&fakeAppointmentService{
		checkResult: scheduling.Result{
			Available:     false,
			Reason:        scheduling.ReasonSlotConflict,
			ConflictingID: "a1",
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/availability?date=2024-06-03&time=11:00&serviceType=Inspection", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), scheduling.ReasonSlotConflict) {
		t.Errorf("expected conflict reason in body, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"conflictingId":"a1"`) {
		t.Errorf("expected conflictingId in body, got %s", w.Body.String())
	}
}
