package handlers

import (
	"net/http"

	"tubtime/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the public slot-availability check.
type AvailabilityHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc appointment.AppointmentService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// CheckAvailability handles GET /api/availability?date=&time=&serviceType=.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	clock := c.Query("time")
	serviceType := c.Query("serviceType")

	if date == "" || clock == "" || serviceType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"available": false, "reason": "Missing parameters"})
		return
	}

	res, err := h.Service.CheckSlot(c.Request.Context(), date, clock, serviceType)
	if err != nil {
		h.Logger.Error("availability check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"available": false, "reason": "Server error"})
		return
	}

	c.JSON(http.StatusOK, res)
}
