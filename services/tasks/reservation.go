package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"thecut/models"
)

const TypeReservationCreated = "reservation:created"

// NewReservationCreatedTask wraps a freshly persisted reservation for the
// notification worker. Delivery is best effort: the handler swallows its own
// failures, so no retry options are attached.
func NewReservationCreatedTask(res models.Reservation) (*asynq.Task, error) {
	b, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReservationCreated, b), nil
}
