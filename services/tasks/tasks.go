package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingExpire         = "booking:expire"
	TypeBookingConfirmedEmail = "email:booking_confirmed"
)

// BookingExpirePayload identifies the booking a deferred expiry acts on.
type BookingExpirePayload struct {
	BookingID string `json:"bookingId"`
}

// BookingConfirmedEmailPayload identifies the booking to send confirmation
// emails for.
type BookingConfirmedEmailPayload struct {
	BookingID string `json:"bookingId"`
}

// NewBookingExpireTask builds the deferred expiry task for a booking.
func NewBookingExpireTask(payload BookingExpirePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewBookingConfirmedEmailTask builds the confirmation email task. A short
// delay keeps it off the request path.
func NewBookingConfirmedEmailTask(payload BookingConfirmedEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmedEmail, b)
	opts := []asynq.Option{asynq.ProcessIn(time.Second)}

	return task, opts, nil
}
