package bookingRepo

import (
	"context"
	"errors"
	"time"

	"strikersyard/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrSlotTaken is returned when a booking insert loses the race for one of
// its slots. The unique index on slot claims raises it, never application
// logic alone.
var ErrSlotTaken = errors.New("one or more requested slots are already claimed")

// BookingRepository persists bookings and their slot claims.
type BookingRepository interface {
	// CreateBookingWithClaims inserts the booking and one claim per occupied
	// catalog position in a single transaction. Returns ErrSlotTaken when a
	// claim collides with an existing active booking.
	CreateBookingWithClaims(ctx context.Context, booking *models.Booking, claims []models.SlotClaim) error

	// ListActiveByDate returns every booking on the date whose status still
	// holds slots, from one query so availability sees one snapshot.
	ListActiveByDate(ctx context.Context, date string) ([]models.Booking, error)

	GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByBookingIDAndUser(ctx context.Context, bookingID, userID string) (*models.Booking, error)
	GetByOrderIDAndUser(ctx context.Context, orderID, userID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)

	// SetPaymentOrder stores the gateway order reference after the order is
	// created (outside the booking transaction).
	SetPaymentOrder(ctx context.Context, bookingID, orderID string) error

	// MarkPaid conditionally advances a pending booking to paid or partial.
	// Reports false when the booking was not pending (already settled,
	// cancelled, or missing) — in that case nothing is written.
	MarkPaid(ctx context.Context, bookingID, paymentID, signature, status string, amountPaid primitive.Decimal128) (bool, error)

	// CancelIfPending conditionally moves a pending booking to cancelled.
	// Reports false without writing when the status is anything else.
	CancelIfPending(ctx context.Context, bookingID string) (bool, error)

	// ReleaseClaims frees every slot claim held by the booking.
	ReleaseClaims(ctx context.Context, bookingID string) error

	// ListStalePending returns pending bookings created before the cutoff,
	// for the expiry sweep.
	ListStalePending(ctx context.Context, createdBefore time.Time) ([]models.Booking, error)

	EnsureIndexes(scopeGlobal bool) error
}
