package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"meetdesk/config"
)

const TypeBookingReminder = "booking:reminder"

// ReminderPayload identifies the booking a reminder fires for. The worker
// re-fetches the booking at fire time so cancellations and reschedules after
// enqueue are respected.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

// NewReminderTask builds an asynq task scheduled to run at fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewReminderClient returns an asynq client bound to the reminder queue DB.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
}
