package models

import (
	"fmt"
	"time"
)

// DefaultServiceDurationMinutes is used when a requested service type is not
// present in the catalog. An incomplete catalog must not reject bookings.
const DefaultServiceDurationMinutes = 120

// ServiceCatalog maps each service type to its expected duration in minutes.
// Immutable at runtime.
type ServiceCatalog struct {
	durations map[string]int
}

// NewServiceCatalog builds a catalog from a service-type → minutes map.
func NewServiceCatalog(durations map[string]int) ServiceCatalog {
	copied := make(map[string]int, len(durations))
	for name, minutes := range durations {
		if minutes > 0 {
			copied[name] = minutes
		}
	}
	return ServiceCatalog{durations: copied}
}

// DefaultServiceCatalog returns the built-in catalog used when no
// SERVICE_DURATIONS configuration is supplied.
func DefaultServiceCatalog() ServiceCatalog {
	return NewServiceCatalog(map[string]int{
		"Hot Tub Moving & Delivery": 180,
		"Hot Tub Installation":      240,
		"Repair & Maintenance":      120,
		"Cleaning Service":          90,
		"Water Testing & Treatment": 60,
		"Inspection":                60,
	})
}

// Duration returns the expected duration for a service type, falling back to
// DefaultServiceDurationMinutes for unknown types.
func (c ServiceCatalog) Duration(serviceType string) time.Duration {
	if minutes, ok := c.durations[serviceType]; ok {
		return time.Duration(minutes) * time.Minute
	}
	return DefaultServiceDurationMinutes * time.Minute
}

// Known reports whether a service type is listed in the catalog.
func (c ServiceCatalog) Known(serviceType string) bool {
	_, ok := c.durations[serviceType]
	return ok
}

// BusinessCalendar holds the static operating-hours configuration: timezone,
// working weekdays and opening/closing hours.
type BusinessCalendar struct {
	Timezone    string
	WorkingDays map[time.Weekday]bool
	OpeningHour int // inclusive, 0-23
	ClosingHour int // exclusive, 0-23

	loc *time.Location
}

// NewBusinessCalendar validates the configuration and resolves the timezone.
func NewBusinessCalendar(timezone string, days []time.Weekday, openingHour, closingHour int) (BusinessCalendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return BusinessCalendar{}, fmt.Errorf("invalid business timezone %q: %w", timezone, err)
	}
	if openingHour < 0 || closingHour > 24 || openingHour >= closingHour {
		return BusinessCalendar{}, fmt.Errorf("invalid business hours [%d, %d)", openingHour, closingHour)
	}
	working := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		working[d] = true
	}
	return BusinessCalendar{
		Timezone:    timezone,
		WorkingDays: working,
		OpeningHour: openingHour,
		ClosingHour: closingHour,
		loc:         loc,
	}, nil
}

// DefaultBusinessCalendar returns the Mon-Fri 9:00-17:00 calendar the booking
// form assumes, in the shop's local timezone.
func DefaultBusinessCalendar() BusinessCalendar {
	cal, err := NewBusinessCalendar(
		"America/New_York",
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		9, 17,
	)
	if err != nil {
		panic(err) // built-in defaults are always valid
	}
	return cal
}

// Location returns the resolved business timezone.
func (b BusinessCalendar) Location() *time.Location {
	if b.loc == nil {
		return time.UTC
	}
	return b.loc
}

// IsWorkingDay reports whether the shop operates on the given weekday.
func (b BusinessCalendar) IsWorkingDay(day time.Weekday) bool {
	return b.WorkingDays[day]
}
