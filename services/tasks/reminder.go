package tasks

import (
	"encoding/json"
	"time"

	"mesafy/models"

	"github.com/hibiken/asynq"
)

const (
	TypeSendReminder = "reservation:reminder"
	TypeNoShowSweep  = "reservation:sweep"
)

// NewReminderTask builds the asynq task reminding a guest of an upcoming
// reservation, scheduled to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewNoShowSweepTask builds the periodic task that marks stale PENDING
// reservations past their release time as NO_SHOW.
func NewNoShowSweepTask() *asynq.Task {
	return asynq.NewTask(TypeNoShowSweep, nil)
}
