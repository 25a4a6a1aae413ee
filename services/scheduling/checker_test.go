package scheduling

import (
	"testing"
	"time"

	"tubtime/models"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	cal, err := models.NewBusinessCalendar(
		"UTC",
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		9, 17,
	)
	if err != nil {
		t.Fatalf("NewBusinessCalendar failed: %v", err)
	}
	return NewChecker(models.DefaultServiceCatalog(), cal)
}

func appt(id, date, clock, serviceType string, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:            id,
		CustomerName:  "Test Customer",
		Email:         "customer@example.com",
		Phone:         "555-0100",
		ServiceType:   serviceType,
		RequestedDate: date,
		RequestedTime: clock,
		Status:        status,
	}
}

func TestCheck_EmptyScheduleIsAvailable(t *testing.T) {
	c := newTestChecker(t)
	res := c.Check("2024-06-03", "10:00", "Repair & Maintenance", nil, "")
	if !res.Available {
		t.Fatalf("expected available, got reason %q", res.Reason)
	}
	if res.Reason != "" || res.ConflictingID != "" {
		t.Errorf("expected empty reason/conflictingId, got %q/%q", res.Reason, res.ConflictingID)
	}
}

func TestCheck_OverlapConflicts(t *testing.T) {
	c := newTestChecker(t)
	// "Hot Tub Moving & Delivery" is 180 min: 09:00-12:00.
	existing := []models.Appointment{
		appt("a1", "2024-06-03", "09:00", "Hot Tub Moving & Delivery", models.StatusConfirmed),
	}

	res := c.Check("2024-06-03", "11:00", "Hot Tub Moving & Delivery", existing, "")
	if res.Available {
		t.Fatal("expected conflict for overlapping slot")
	}
	if res.Reason != ReasonSlotConflict {
		t.Errorf("expected reason %q, got %q", ReasonSlotConflict, res.Reason)
	}
	if res.ConflictingID != "a1" {
		t.Errorf("expected conflictingId a1, got %q", res.ConflictingID)
	}
}

func TestCheck_BackToBackDoesNotConflict(t *testing.T) {
	c := newTestChecker(t)
	// 09:00 + 180 min ends exactly at 12:00; a 12:00 request must be free.
	existing := []models.Appointment{
		appt("a1", "2024-06-03", "09:00", "Hot Tub Moving & Delivery", models.StatusConfirmed),
	}

	res := c.Check("2024-06-03", "12:00", "Hot Tub Moving & Delivery", existing, "")
	if !res.Available {
		t.Fatalf("expected back-to-back slot to be available, got reason %q", res.Reason)
	}
}

func TestCheck_RequestOverlappingFromBefore(t *testing.T) {
	c := newTestChecker(t)
	// Existing 13:00-15:00; a 180-min request at 12:00 runs into it.
	existing := []models.Appointment{
		appt("a1", "2024-06-03", "13:00", "Repair & Maintenance", models.StatusPending),
	}

	res := c.Check("2024-06-03", "12:00", "Hot Tub Moving & Delivery", existing, "")
	if res.Available {
		t.Fatal("expected conflict when request interval extends into existing slot")
	}
	if res.ConflictingID != "a1" {
		t.Errorf("expected conflictingId a1, got %q", res.ConflictingID)
	}
}

func TestCheck_OutsideBusinessHours(t *testing.T) {
	c := newTestChecker(t)

	// 2024-06-03 is a Monday; 08:00 is before the 9:00 opening hour.
	res := c.Check("2024-06-03", "08:00", "Inspection", nil, "")
	if res.Available {
		t.Fatal("expected rejection before opening hour")
	}
	if res.Reason != ReasonOutsideBusinessHours {
		t.Errorf("expected reason %q, got %q", ReasonOutsideBusinessHours, res.Reason)
	}

	// 17:00 is the exclusive closing hour.
	res = c.Check("2024-06-03", "17:00", "Inspection", nil, "")
	if res.Available || res.Reason != ReasonOutsideBusinessHours {
		t.Errorf("expected closing-hour rejection, got %+v", res)
	}

	// 16:00 still starts within hours even if the job runs past closing.
	res = c.Check("2024-06-03", "16:00", "Hot Tub Moving & Delivery", nil, "")
	if !res.Available {
		t.Errorf("expected start-hour-only check to pass at 16:00, got reason %q", res.Reason)
	}
}

func TestCheck_OutsideBusinessDays(t *testing.T) {
	c := newTestChecker(t)

	// 2024-06-01 is a Saturday.
	res := c.Check("2024-06-01", "10:00", "Inspection", nil, "")
	if res.Available {
		t.Fatal("expected rejection on non-working day")
	}
	if res.Reason != ReasonOutsideBusinessDays {
		t.Errorf("expected reason %q, got %q", ReasonOutsideBusinessDays, res.Reason)
	}
}

func TestCheck_WeekdayRejectionWinsOverConflicts(t *testing.T) {
	c := newTestChecker(t)
	existing := []models.Appointment{
		appt("a1", "2024-06-01", "10:00", "Inspection", models.StatusConfirmed),
	}

	res := c.Check("2024-06-01", "10:00", "Inspection", existing, "")
	if res.Reason != ReasonOutsideBusinessDays {
		t.Errorf("calendar rejection should precede conflict scan, got %q", res.Reason)
	}
	if res.ConflictingID != "" {
		t.Errorf("no conflict should be reported, got %q", res.ConflictingID)
	}
}

func TestCheck_InvalidDateTime(t *testing.T) {
	c := newTestChecker(t)

	for _, tc := range []struct{ date, clock string }{
		{"2024-13-99", "10:00"},
		{"2024-06-03", "25:61"},
		{"not-a-date", "10:00"},
		{"", ""},
	} {
		res := c.Check(tc.date, tc.clock, "Inspection", nil, "")
		if res.Available {
			t.Errorf("Check(%q, %q) should reject", tc.date, tc.clock)
		}
		if res.Reason != ReasonInvalidDateTime {
			t.Errorf("Check(%q, %q) reason = %q, want %q", tc.date, tc.clock, res.Reason, ReasonInvalidDateTime)
		}
	}
}

func TestCheck_CancelledAndCompletedDoNotBlock(t *testing.T) {
	c := newTestChecker(t)
	existing := []models.Appointment{
		appt("a1", "2024-06-03", "10:00", "Repair & Maintenance", models.StatusCancelled),
		appt("a2", "2024-06-03", "10:00", "Repair & Maintenance", models.StatusCompleted),
	}

	res := c.Check("2024-06-03", "10:00", "Repair & Maintenance", existing, "")
	if !res.Available {
		t.Fatalf("cancelled/completed appointments must not block the slot, got reason %q", res.Reason)
	}
}

func TestCheck_ChecksDateItself(t *testing.T) {
	c := newTestChecker(t)
	// Callers are not trusted to pre-filter by date.
	existing := []models.Appointment{
		appt("a1", "2024-06-04", "10:00", "Repair & Maintenance", models.StatusConfirmed),
	}

	res := c.Check("2024-06-03", "10:00", "Repair & Maintenance", existing, "")
	if !res.Available {
		t.Fatalf("appointment on a different date must not block the slot, got reason %q", res.Reason)
	}
}

func TestCheck_ExcludeIDSkipsOwnRecord(t *testing.T) {
	c := newTestChecker(t)
	existing := []models.Appointment{
		appt("a1", "2024-06-03", "10:00", "Repair & Maintenance", models.StatusConfirmed),
	}

	// Rescheduling a1 to its own slot must not conflict with itself.
	res := c.Check("2024-06-03", "10:00", "Repair & Maintenance", existing, "a1")
	if !res.Available {
		t.Fatalf("excluded appointment conflicted with itself: %q", res.Reason)
	}

	// But another appointment still blocks it.
	existing = append(existing, appt("a2", "2024-06-03", "10:30", "Inspection", models.StatusPending))
	res = c.Check("2024-06-03", "10:00", "Repair & Maintenance", existing, "a1")
	if res.Available {
		t.Fatal("expected conflict with non-excluded appointment")
	}
	if res.ConflictingID != "a2" {
		t.Errorf("expected conflictingId a2, got %q", res.ConflictingID)
	}
}

func TestCheck_UnknownServiceTypeFallsBackTo120Minutes(t *testing.T) {
	c := newTestChecker(t)
	// Unknown type occupies 09:00-11:00 under the 120-minute fallback.
	existing := []models.Appointment{
		appt("a1", "2024-06-03", "09:00", "Gazebo Assembly", models.StatusConfirmed),
	}

	res := c.Check("2024-06-03", "10:30", "Inspection", existing, "")
	if res.Available {
		t.Fatal("expected conflict inside the fallback duration window")
	}

	res = c.Check("2024-06-03", "11:00", "Inspection", existing, "")
	if !res.Available {
		t.Fatalf("expected availability right after the fallback window, got reason %q", res.Reason)
	}

	// Requesting an unknown type must not error either.
	res = c.Check("2024-06-03", "13:00", "Gazebo Assembly", nil, "")
	if !res.Available {
		t.Fatalf("unknown service type request should succeed, got reason %q", res.Reason)
	}
}

func TestCheck_UnparsableStoredRecordIsSkipped(t *testing.T) {
	c := newTestChecker(t)
	existing := []models.Appointment{
		appt("bad", "2024-06-03", "garbage", "Inspection", models.StatusConfirmed),
	}

	res := c.Check("2024-06-03", "10:00", "Inspection", existing, "")
	if !res.Available {
		t.Fatalf("corrupt stored record must not block the slot, got reason %q", res.Reason)
	}
}
