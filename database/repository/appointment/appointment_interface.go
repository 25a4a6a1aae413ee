package appointmentRepo

import (
	"context"

	"tubtime/models"
)

// Filter narrows admin listings. Zero values mean "no constraint".
type Filter struct {
	Status models.AppointmentStatus
	Date   string
	Limit  int64
}

// AppointmentRepository abstracts appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	// FindActiveByDate returns appointments on the given date whose status
	// still blocks a slot (pending or confirmed).
	FindActiveByDate(ctx context.Context, date string) ([]models.Appointment, error)
	List(ctx context.Context, filter Filter) ([]models.Appointment, error)
}
