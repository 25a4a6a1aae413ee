package notification

import (
	"context"
	"fmt"

	"tubtime/config"
	"tubtime/models"
	"tubtime/utils"

	"firebase.google.com/go/v4/messaging"
)

// DefaultNotificationService is the production implementation: SMTP mail to
// customers and staff, FCM push to the staff device.
type DefaultNotificationService struct {
	Mailer *Mailer
}

func NewDefaultNotificationService(mailer *Mailer) (*DefaultNotificationService, error) {
	if mailer == nil {
		return nil, fmt.Errorf("notification service initialization error: mailer is nil")
	}
	return &DefaultNotificationService{Mailer: mailer}, nil
}

// SendBookingReceived emails the customer that their request was received.
func (s *DefaultNotificationService) SendBookingReceived(ctx context.Context, appt *models.Appointment) error {
	subject := "We received your appointment request"
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for your request:\n\n  %s\n\nOur team will contact you within 24 hours to confirm.\n\nReference: %s\n",
		appt.CustomerName, slotLine(appt), appt.ID,
	)
	return s.Mailer.Send(ctx, appt.Email, subject, body)
}

// SendBookingConfirmed emails the customer that staff confirmed the slot.
func (s *DefaultNotificationService) SendBookingConfirmed(ctx context.Context, appt *models.Appointment) error {
	subject := "Your appointment is confirmed"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment is confirmed:\n\n  %s\n\nSee you then!\n\nReference: %s\n",
		appt.CustomerName, slotLine(appt), appt.ID,
	)
	return s.Mailer.Send(ctx, appt.Email, subject, body)
}

// SendBookingCancelled emails the customer that the appointment was cancelled.
func (s *DefaultNotificationService) SendBookingCancelled(ctx context.Context, appt *models.Appointment) error {
	subject := "Your appointment was cancelled"
	body := fmt.Sprintf(
		"Hi %s,\n\nThe following appointment was cancelled:\n\n  %s\n\nContact us if this is unexpected.\n\nReference: %s\n",
		appt.CustomerName, slotLine(appt), appt.ID,
	)
	return s.Mailer.Send(ctx, appt.Email, subject, body)
}

// SendReminder emails the customer ahead of an upcoming appointment.
func (s *DefaultNotificationService) SendReminder(ctx context.Context, appt *models.Appointment) error {
	subject := "Reminder: upcoming appointment"
	body := fmt.Sprintf(
		"Hi %s,\n\nA reminder about your upcoming appointment:\n\n  %s\n\nReference: %s\n",
		appt.CustomerName, slotLine(appt), appt.ID,
	)
	return s.Mailer.Send(ctx, appt.Email, subject, body)
}

// NotifyStaffNewBooking alerts staff about a new request by email and push.
// The email and push are independent; the first failure is returned but both
// are attempted.
func (s *DefaultNotificationService) NotifyStaffNewBooking(ctx context.Context, appt *models.Appointment) error {
	var firstErr error

	if inbox := config.AppConfig.StaffInbox; inbox != "" {
		subject := fmt.Sprintf("New appointment request: %s", appt.ServiceType)
		body := fmt.Sprintf(
			"New booking request.\n\n  %s\n\nCustomer: %s\nEmail: %s\nPhone: %s\nAddress: %s\nNotes: %s\nPhoto: %s\nReference: %s\n",
			slotLine(appt), appt.CustomerName, appt.Email, appt.Phone, appt.Address, appt.Notes, appt.PhotoURL, appt.ID,
		)
		if err := s.Mailer.Send(ctx, inbox, subject, body); err != nil {
			firstErr = err
		}
	}

	if err := s.pushStaff(ctx, appt); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// pushStaff sends an FCM push to the staff device, if push is configured.
func (s *DefaultNotificationService) pushStaff(ctx context.Context, appt *models.Appointment) error {
	token := config.AppConfig.StaffFCMToken
	if utils.FCMClient == nil || token == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "New appointment request",
			Body:  slotLine(appt),
		},
		Data: map[string]string{
			"type":          "new_booking",
			"appointmentId": appt.ID,
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("pushStaff: failed to send FCM message: %w", err)
	}
	return nil
}
