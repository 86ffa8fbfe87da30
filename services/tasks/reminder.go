package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"priisme/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// reminderLead is how far before the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// NewReminderTask builds an asynq task scheduled for fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues booking reminders on the asynq queue.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler wraps an asynq client.
func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{client: client}
}

// ScheduleBookingReminder enqueues a reminder 24h before the appointment.
// Appointments closer than the lead time get no reminder.
func (s *Scheduler) ScheduleBookingReminder(payload models.ReminderPayload) error {
	at, err := time.ParseInLocation("2006-01-02 15:04", payload.Date+" "+payload.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking date/time for reminder: %w", err)
	}

	fireAt := at.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
