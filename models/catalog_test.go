package models

import (
	"testing"
	"time"
)

func TestServiceCatalog_DurationFallback(t *testing.T) {
	catalog := DefaultServiceCatalog()

	if got := catalog.Duration("Hot Tub Moving & Delivery"); got != 180*time.Minute {
		t.Errorf("expected 180m, got %v", got)
	}
	if got := catalog.Duration("Totally Unknown Service"); got != DefaultServiceDurationMinutes*time.Minute {
		t.Errorf("expected %dm fallback, got %v", DefaultServiceDurationMinutes, got)
	}
	if catalog.Known("Totally Unknown Service") {
		t.Error("unknown service reported as known")
	}
}

func TestNewBusinessCalendar_Validation(t *testing.T) {
	if _, err := NewBusinessCalendar("Mars/Olympus", []time.Weekday{time.Monday}, 9, 17); err == nil {
		t.Error("expected error for unknown timezone")
	}
	if _, err := NewBusinessCalendar("UTC", []time.Weekday{time.Monday}, 17, 9); err == nil {
		t.Error("expected error for inverted hours")
	}

	cal, err := NewBusinessCalendar("UTC", []time.Weekday{time.Monday}, 9, 17)
	if err != nil {
		t.Fatalf("valid calendar rejected: %v", err)
	}
	if !cal.IsWorkingDay(time.Monday) || cal.IsWorkingDay(time.Sunday) {
		t.Error("working day set incorrect")
	}
	if cal.Location().String() != "UTC" {
		t.Errorf("expected UTC location, got %s", cal.Location())
	}
}
