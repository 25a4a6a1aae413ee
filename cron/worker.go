package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tubtime/config"
	appointmentRepo "tubtime/database/repository/appointment"
	"tubtime/models"
	"tubtime/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// reminderLeadTime is how long before the slot the customer reminder fires.
const reminderLeadTime = 24 * time.Hour

// ReminderPayload identifies the appointment to remind about. The worker
// re-reads the record so a cancellation between enqueue and fire drops the
// reminder naturally.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler enqueues reminder tasks on the Redis-backed queue.
type AsynqReminderScheduler struct {
	client   *asynq.Client
	calendar models.BusinessCalendar
}

// NewAsynqReminderScheduler builds the scheduler used by the appointment service.
func NewAsynqReminderScheduler(calendar models.BusinessCalendar) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client:   asynq.NewClient(redisOpts()),
		calendar: calendar,
	}
}

// ScheduleReminder enqueues a reminder 24h before the appointment slot.
// Slots closer than the lead time get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	slotStart, err := time.ParseInLocation(
		models.DateLayout+" "+models.TimeLayout,
		appt.RequestedDate+" "+appt.RequestedTime,
		s.calendar.Location(),
	)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder for %s: %w", appt.ID, err)
	}

	fireAt := slotStart.Add(-reminderLeadTime)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{AppointmentID: appt.ID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for %s: %w", appt.ID, err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(repo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(repo, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(repo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := repo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] appointment %s not found, dropping reminder: %v", p.AppointmentID, err)
			return nil
		}

		// Only confirmed appointments get a reminder; a cancellation since
		// enqueue silently drops it.
		if appt.Status != models.StatusConfirmed {
			return nil
		}

		if err := notifSvc.SendReminder(ctx, appt); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", appt.ID, err)
			return err
		}
		return nil
	}
}
