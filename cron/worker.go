package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"priisme/config"
	"priisme/models"
	"priisme/services/notification"
	"priisme/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}

		n := models.Notification{
			Title: "Upcoming appointment",
			Description: fmt.Sprintf("Reminder: %s at %s tomorrow, %s %s",
				payload.ServiceName, payload.SalonName, payload.Date, payload.Time),
			Variant: models.VariantNormal,
			Data:    map[string]string{"bookingId": payload.BookingID},
		}
		if err := notifSvc.Notify(ctx, payload.UserID, n); err != nil {
			return fmt.Errorf("failed to deliver reminder for booking %s: %w", payload.BookingID, err)
		}
		return nil
	}
}
