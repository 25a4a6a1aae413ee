package config

import (
	"fmt"
	"time"

	"tubtime/models"
)

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// BusinessCalendar builds the business calendar from the loaded configuration.
func BusinessCalendar() (models.BusinessCalendar, error) {
	days := make([]time.Weekday, 0, len(AppConfig.BusinessWorkingDays))
	for _, name := range AppConfig.BusinessWorkingDays {
		day, ok := weekdayNames[name]
		if !ok {
			return models.BusinessCalendar{}, fmt.Errorf("unknown weekday %q in BUSINESS_WORKING_DAYS", name)
		}
		days = append(days, day)
	}
	return models.NewBusinessCalendar(
		AppConfig.BusinessTimezone,
		days,
		AppConfig.BusinessOpeningHour,
		AppConfig.BusinessClosingHour,
	)
}

// ServiceCatalog builds the service catalog from configuration, falling back
// to the built-in defaults when no SERVICE_DURATIONS are configured.
func ServiceCatalog() models.ServiceCatalog {
	if len(AppConfig.ServiceDurations) == 0 {
		return models.DefaultServiceCatalog()
	}
	return models.NewServiceCatalog(AppConfig.ServiceDurations)
}
