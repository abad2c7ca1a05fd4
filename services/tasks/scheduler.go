package tasks

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Scheduler enqueues deferred work. Delivery is at-least-once with no
// ordering guarantee; every handler must be idempotent.
type Scheduler interface {
	ScheduleExpiry(bookingID string, fireAt time.Time) error
	EnqueueConfirmationEmail(bookingID string) error
}

// AsynqScheduler implements Scheduler over an asynq client.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler constructs a scheduler from an asynq client.
func NewAsynqScheduler(client *asynq.Client) *AsynqScheduler {
	return &AsynqScheduler{client: client}
}

func (s *AsynqScheduler) ScheduleExpiry(bookingID string, fireAt time.Time) error {
	task, opts, err := NewBookingExpireTask(BookingExpirePayload{BookingID: bookingID}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build expiry task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue expiry task: %w", err)
	}
	return nil
}

func (s *AsynqScheduler) EnqueueConfirmationEmail(bookingID string) error {
	task, opts, err := NewBookingConfirmedEmailTask(BookingConfirmedEmailPayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to build confirmation email task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue confirmation email task: %w", err)
	}
	return nil
}
