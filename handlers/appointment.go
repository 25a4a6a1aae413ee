package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "tubtime/database/repository/appointment"
	"tubtime/models"
	"tubtime/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the create/get/update/list appointment endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

func NewAppointmentHandler(svc appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// CreateAppointment handles POST /api/appointments (public, customer-facing).
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	appt, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"appointmentId": appt.ID,
	})
}

// GetAppointment handles GET /api/appointments/:id (staff only).
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointment handles PATCH /api/appointments/:id (staff only).
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	appt, err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// ListAppointments handles GET /api/appointments?status=&date= (staff only).
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	filter := appointmentRepo.Filter{
		Status: models.AppointmentStatus(c.Query("status")),
		Date:   c.Query("date"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status", "field": "status"})
		return
	}

	appts, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// writeServiceError maps service errors onto the API error taxonomy:
// validation 400, conflict 409, not-found 404, contention 503, everything
// else a generic 500 with detail kept server-side.
func (h *AppointmentHandler) writeServiceError(c *gin.Context, err error) {
	var (
		validationErr *appointment.ValidationError
		conflictErr   *appointment.ConflictError
		notFoundErr   *appointment.NotFoundError
		busyErr       *appointment.SlotBusyError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.As(err, &conflictErr):
		body := gin.H{"error": conflictErr.Reason}
		if conflictErr.ConflictingID != "" {
			body["conflictingId"] = conflictErr.ConflictingID
		}
		c.JSON(http.StatusConflict, body)
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
	case errors.As(err, &busyErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "slot is being booked, please retry"})
	default:
		h.Logger.Error("appointment operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
