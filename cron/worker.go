package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"medibook/config"
	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/notification"
	"medibook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(notifSvc, apptRepo))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// NewQueueClient returns the asynq client used to enqueue reminder tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// handleReminderTask delivers a due reminder. The appointment's current
// status is re-checked at fire time: tasks are enqueued when a booking is
// confirmed, and anything cancelled, declined, or completed since then must
// not page the patient.
func handleReminderTask(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] Appointment %s not found, dropping reminder: %v", p.AppointmentID, err)
			return nil
		}
		if appt.Status != models.AppointmentConfirmed {
			log.Printf("[ReminderHandler] Skipping reminder for appointment %s in status %s", p.AppointmentID, appt.Status)
			return nil
		}

		return notifSvc.SendAppointmentReminder(ctx, p)
	}
}
