package notification

import (
	"context"

	"tubtime/models"
)

// NotificationService sends booking-related email and push notifications.
// All sends are best-effort: the caller logs failures and never propagates
// them into the booking operation itself.
type NotificationService interface {
	// SendBookingReceived emails the customer that their request was received.
	SendBookingReceived(ctx context.Context, appt *models.Appointment) error
	// SendBookingConfirmed emails the customer that staff confirmed the slot.
	SendBookingConfirmed(ctx context.Context, appt *models.Appointment) error
	// SendBookingCancelled emails the customer that the appointment was cancelled.
	SendBookingCancelled(ctx context.Context, appt *models.Appointment) error
	// SendReminder emails the customer ahead of an upcoming appointment.
	SendReminder(ctx context.Context, appt *models.Appointment) error
	// NotifyStaffNewBooking alerts staff about a new request by email and push.
	NotifyStaffNewBooking(ctx context.Context, appt *models.Appointment) error
}
