package scheduling

import (
	"time"

	"tubtime/models"
	"tubtime/utils"

	"go.uber.org/zap"
)

// Rejection reasons returned to callers. These are part of the API contract
// with the booking form, which surfaces them to the customer verbatim.
const (
	ReasonInvalidDateTime      = "invalid date/time"
	ReasonOutsideBusinessDays  = "Outside business days"
	ReasonOutsideBusinessHours = "Outside business hours"
	ReasonSlotConflict         = "Time slot conflicts with existing appointment"
)

// Result is the availability verdict for a requested slot.
type Result struct {
	Available     bool   `json:"available"`
	Reason        string `json:"reason,omitempty"`
	ConflictingID string `json:"conflictingId,omitempty"`
}

// Checker decides whether a (date, time, serviceType) slot is free given the
// set of existing appointments. It is stateless and safe for concurrent use.
type Checker struct {
	Catalog  models.ServiceCatalog
	Calendar models.BusinessCalendar
}

// NewChecker builds a slot checker over the given catalog and calendar.
func NewChecker(catalog models.ServiceCatalog, calendar models.BusinessCalendar) *Checker {
	return &Checker{Catalog: catalog, Calendar: calendar}
}

// Check evaluates a requested slot against existing appointments. It filters
// the candidate set itself: only appointments on the same requested date whose
// status still blocks the slot are considered, so callers may pass an
// unfiltered list. excludeID omits one appointment from conflicting with
// itself; pass it when re-checking a reschedule. The first overlap found wins;
// which one is reported does not matter, only that at least one exists.
//
// Business-hours validation intentionally checks the start hour only, not
// whether the full service duration fits before closing. Jobs running past
// closing time are dispatched at the shop's discretion.
func (c *Checker) Check(requestedDate, requestedTime, serviceType string, existing []models.Appointment, excludeID string) Result {
	start, ok := c.parseSlotStart(requestedDate, requestedTime)
	if !ok {
		return Result{Available: false, Reason: ReasonInvalidDateTime}
	}

	if !c.Calendar.IsWorkingDay(start.Weekday()) {
		return Result{Available: false, Reason: ReasonOutsideBusinessDays}
	}
	if start.Hour() < c.Calendar.OpeningHour || start.Hour() >= c.Calendar.ClosingHour {
		return Result{Available: false, Reason: ReasonOutsideBusinessHours}
	}

	end := start.Add(c.Catalog.Duration(serviceType))

	for _, appt := range existing {
		if excludeID != "" && appt.ID == excludeID {
			continue
		}
		if appt.RequestedDate != requestedDate || !appt.Status.BlocksSlot() {
			continue
		}
		otherStart, ok := c.parseSlotStart(appt.RequestedDate, appt.RequestedTime)
		if !ok {
			// A stored record that no longer parses cannot block the slot.
			utils.GetLogger().Warn("scheduling: skipping appointment with unparsable slot",
				zap.String("appointmentID", appt.ID),
				zap.String("requestedDate", appt.RequestedDate),
				zap.String("requestedTime", appt.RequestedTime))
			continue
		}
		otherEnd := otherStart.Add(c.Catalog.Duration(appt.ServiceType))

		// Half-open overlap test: back-to-back slots do not conflict.
		if start.Before(otherEnd) && otherStart.Before(end) {
			return Result{
				Available:     false,
				Reason:        ReasonSlotConflict,
				ConflictingID: appt.ID,
			}
		}
	}

	return Result{Available: true}
}

// parseSlotStart combines a date and wall-clock time into an instant in the
// business timezone.
func (c *Checker) parseSlotStart(date, clock string) (time.Time, bool) {
	t, err := time.ParseInLocation(models.DateLayout+" "+models.TimeLayout, date+" "+clock, c.Calendar.Location())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
