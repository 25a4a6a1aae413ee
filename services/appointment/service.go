package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	appointmentRepo "tubtime/database/repository/appointment"
	"tubtime/models"
	"tubtime/services/notification"
	"tubtime/services/scheduling"
	"tubtime/services/storage"
	"tubtime/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	Checker   *scheduling.Checker
	Locker    SlotLocker
	Cache     CandidateCache
	Storage   storage.StorageService
	Notifier  notification.NotificationService
	Reminders ReminderScheduler
}

// CheckSlot runs the availability checker against the stored appointments.
// The candidate set is served from the short-TTL cache when possible; write
// paths never use it.
func (s *DefaultAppointmentService) CheckSlot(ctx context.Context, date, clock, serviceType string) (scheduling.Result, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, date); ok {
			return s.Checker.Check(date, clock, serviceType, cached, ""), nil
		}
	}
	existing, err := s.Repo.FindActiveByDate(ctx, date)
	if err != nil {
		return scheduling.Result{}, err
	}
	if s.Cache != nil {
		s.Cache.Set(ctx, date, existing)
	}
	return s.Checker.Check(date, clock, serviceType, existing, ""), nil
}

// Create validates a submission, gates it on the slot checker and persists it
// with status pending.
func (s *DefaultAppointmentService) Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := validateCreateRequest(req); err != nil {
		s.discardPhotoAsync(req.PhotoURL)
		return nil, err
	}

	logger := utils.GetLogger()
	if !s.Checker.Catalog.Known(req.ServiceType) {
		logger.Warn("create: service type not in catalog, using default duration",
			zap.String("serviceType", req.ServiceType))
	}

	now := time.Now().UTC()
	appt := &models.Appointment{
		ID:            uuid.New().String(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		ServiceType:   req.ServiceType,
		RequestedDate: req.RequestedDate,
		RequestedTime: req.RequestedTime,
		Notes:         req.Notes,
		PhotoURL:      req.PhotoURL,
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The check and the insert run under a per-(date, serviceType) lock so
	// two concurrent submissions cannot both pass the check.
	err := s.Locker.WithLock(ctx, SlotKey(req.RequestedDate, req.ServiceType), func() error {
		existing, err := s.Repo.FindActiveByDate(ctx, req.RequestedDate)
		if err != nil {
			return err
		}
		res := s.Checker.Check(req.RequestedDate, req.RequestedTime, req.ServiceType, existing, "")
		if !res.Available {
			return slotError(res, req.RequestedDate)
		}
		return s.Repo.Create(ctx, appt)
	})
	if err != nil {
		s.discardPhotoAsync(req.PhotoURL)
		return nil, err
	}
	s.invalidateCache(ctx, req.RequestedDate)

	s.notifyAsync("booking received", func(ctx context.Context) error {
		return s.Notifier.SendBookingReceived(ctx, appt)
	})
	s.notifyAsync("staff alert", func(ctx context.Context) error {
		return s.Notifier.NotifyStaffNewBooking(ctx, appt)
	})

	return appt, nil
}

// GetByID fetches a single appointment.
func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return appt, nil
}

// Update applies staff mutations: status transitions and rescheduling.
func (s *DefaultAppointmentService) Update(ctx context.Context, id string, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" && !req.Status.Valid() {
		return nil, NewValidationError("status", "unknown status "+string(req.Status))
	}

	newDate := appt.RequestedDate
	if req.RequestedDate != "" {
		newDate = req.RequestedDate
	}
	newTime := appt.RequestedTime
	if req.RequestedTime != "" {
		newTime = req.RequestedTime
	}
	newService := appt.ServiceType
	if req.ServiceType != "" {
		newService = req.ServiceType
	}

	rescheduled := newDate != appt.RequestedDate || newTime != appt.RequestedTime || newService != appt.ServiceType

	apply := func() error {
		appt.RequestedDate = newDate
		appt.RequestedTime = newTime
		appt.ServiceType = newService
		if req.Status != "" {
			appt.Status = req.Status
		}
		if req.Notes != nil {
			appt.Notes = *req.Notes
		}
		appt.UpdatedAt = time.Now().UTC()
		return s.Repo.Update(ctx, appt)
	}

	statusBefore := appt.Status
	oldDate := appt.RequestedDate

	if rescheduled {
		// Re-check the new slot, excluding this appointment's own record.
		err = s.Locker.WithLock(ctx, SlotKey(newDate, newService), func() error {
			existing, err := s.Repo.FindActiveByDate(ctx, newDate)
			if err != nil {
				return err
			}
			res := s.Checker.Check(newDate, newTime, newService, existing, appt.ID)
			if !res.Available {
				return slotError(res, newDate)
			}
			return apply()
		})
	} else {
		err = apply()
	}
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, oldDate, newDate)
	s.afterStatusChange(statusBefore, appt)
	return appt, nil
}

// List returns appointments matching the filter.
func (s *DefaultAppointmentService) List(ctx context.Context, filter appointmentRepo.Filter) ([]models.Appointment, error) {
	return s.Repo.List(ctx, filter)
}

// afterStatusChange fires the side effects of a staff status transition.
func (s *DefaultAppointmentService) afterStatusChange(before models.AppointmentStatus, appt *models.Appointment) {
	if before == appt.Status {
		return
	}

	switch appt.Status {
	case models.StatusConfirmed:
		if s.Reminders != nil {
			if err := s.Reminders.ScheduleReminder(appt); err != nil {
				utils.GetLogger().Error("failed to schedule reminder",
					zap.String("appointmentID", appt.ID), zap.Error(err))
			}
		}
		s.notifyAsync("booking confirmed", func(ctx context.Context) error {
			return s.Notifier.SendBookingConfirmed(ctx, appt)
		})
	case models.StatusCancelled:
		s.notifyAsync("booking cancelled", func(ctx context.Context) error {
			return s.Notifier.SendBookingCancelled(ctx, appt)
		})
	}
}

// notifyAsync runs a best-effort notification in the background. Failures are
// logged and never surfaced to the caller.
func (s *DefaultAppointmentService) notifyAsync(kind string, send func(ctx context.Context) error) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := send(ctx); err != nil {
			utils.GetLogger().Error("notification failed",
				zap.String("kind", kind), zap.Error(err))
		}
	}()
}

// slotError maps a checker rejection onto the error taxonomy: malformed
// date/time input is the caller's fault, everything else is a slot conflict.
func slotError(res scheduling.Result, date string) error {
	if res.Reason == scheduling.ReasonInvalidDateTime {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return NewValidationError("requestedDate", "must be a valid YYYY-MM-DD date")
		}
		return NewValidationError("requestedTime", "must be a valid 24-hour HH:MM time")
	}
	return &ConflictError{Reason: res.Reason, ConflictingID: res.ConflictingID}
}

// invalidateCache drops cached candidate sets for the given dates after a
// write. Best-effort: the TTL covers missed invalidations.
func (s *DefaultAppointmentService) invalidateCache(ctx context.Context, dates ...string) {
	if s.Cache == nil {
		return
	}
	s.Cache.Invalidate(ctx, dates...)
}

// discardPhotoAsync removes the uploaded photo of a rejected submission so
// failed bookings do not leave orphaned files in blob storage.
func (s *DefaultAppointmentService) discardPhotoAsync(photoURL string) {
	if s.Storage == nil || photoURL == "" {
		return
	}
	publicID := storage.PublicIDFromURL(photoURL)
	if publicID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Storage.DeletePhoto(ctx, publicID); err != nil {
			utils.GetLogger().Warn("failed to discard orphaned photo",
				zap.String("publicId", publicID), zap.Error(err))
		}
	}()
}

func validateCreateRequest(req models.CreateAppointmentRequest) error {
	required := []struct{ field, value string }{
		{"customerName", req.CustomerName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"serviceType", req.ServiceType},
		{"requestedDate", req.RequestedDate},
		{"requestedTime", req.RequestedTime},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewValidationError(r.field, "is required")
		}
	}
	if !strings.Contains(req.Email, "@") {
		return NewValidationError("email", "is not a valid email address")
	}
	return nil
}
