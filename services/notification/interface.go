package notification

import "context"

// BookingConfirmation is the assembled view a confirmation email needs. The
// time range is derived from the slot catalog by the caller, with the same
// index arithmetic used everywhere else.
type BookingConfirmation struct {
	UserName      string
	UserEmail     string
	ServiceName   string
	Date          string
	TimeRange     string // "16:00 - 18:00"
	DurationHours int
	AmountPaid    string
	Status        string
	BookingID     string
}

// Service sends outbound messages. Failures are logged and retried by the
// task queue, never surfaced to the original caller.
type Service interface {
	SendBookingConfirmed(ctx context.Context, conf BookingConfirmation) error
	SendOTP(ctx context.Context, phone, code string) error
}
