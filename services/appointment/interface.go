package appointment

import (
	"context"

	appointmentRepo "tubtime/database/repository/appointment"
	"tubtime/models"
	"tubtime/services/scheduling"
)

// ReminderScheduler enqueues a customer reminder for a confirmed appointment.
// Implemented by the asynq-backed scheduler in the cron package.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}

// AppointmentService is the application-facing API over appointments.
type AppointmentService interface {
	// CheckSlot runs the availability checker against the stored appointments.
	CheckSlot(ctx context.Context, date, clock, serviceType string) (scheduling.Result, error)
	// Create validates a submission, gates it on the slot checker and persists
	// it with status pending. Notifications are best-effort.
	Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// Update applies staff mutations: status transitions and rescheduling.
	// A reschedule re-runs the checker with the appointment's own id excluded.
	Update(ctx context.Context, id string, req models.UpdateAppointmentRequest) (*models.Appointment, error)
	List(ctx context.Context, filter appointmentRepo.Filter) ([]models.Appointment, error)
}
