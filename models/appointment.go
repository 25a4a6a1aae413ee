package models

import "time"

// Appointment date/time wire formats. RequestedDate and RequestedTime are kept
// as strings so documents compare by calendar date without timezone math.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a known appointment status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BlocksSlot reports whether an appointment in this status occupies its time
// slot. Cancelled and completed appointments free the slot.
func (s AppointmentStatus) BlocksSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Appointment represents a customer booking request/record.
type Appointment struct {
	ID            string            `bson:"id" json:"id"`
	CustomerName  string            `bson:"customer_name" json:"customerName"`
	Email         string            `bson:"email" json:"email"`
	Phone         string            `bson:"phone" json:"phone"`
	Address       string            `bson:"address,omitempty" json:"address,omitempty"`
	ServiceType   string            `bson:"service_type" json:"serviceType"`
	RequestedDate string            `bson:"requested_date" json:"requestedDate"` // "2006-01-02"
	RequestedTime string            `bson:"requested_time" json:"requestedTime"` // "15:04", 24-hour
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	PhotoURL      string            `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	Status        AppointmentStatus `bson:"status" json:"status"`
	CreatedAt     time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updatedAt"`
}

// CreateAppointmentRequest is the customer-facing submission payload.
type CreateAppointmentRequest struct {
	CustomerName  string `json:"customerName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ServiceType   string `json:"serviceType"`
	RequestedDate string `json:"requestedDate"`
	RequestedTime string `json:"requestedTime"`
	Notes         string `json:"notes"`
	PhotoURL      string `json:"photoUrl"`
}

// UpdateAppointmentRequest carries staff-side mutations. Zero-valued fields
// are left untouched. Notes is a pointer so an explicit empty string clears
// the stored notes while an omitted field keeps them.
type UpdateAppointmentRequest struct {
	Status        AppointmentStatus `json:"status"`
	RequestedDate string            `json:"requestedDate"`
	RequestedTime string            `json:"requestedTime"`
	ServiceType   string            `json:"serviceType"`
	Notes         *string           `json:"notes"`
}
