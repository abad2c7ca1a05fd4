package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. A booking starts pending and moves to exactly one of the
// other three; partial, paid and cancelled are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusPartial   = "partial"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
)

// ActiveBookingStatuses are the statuses that hold slots against a date.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusPartial,
	BookingStatusPaid,
}

// Booking is the central record. Only the start slot is stored; the occupied
// range is always re-derived as [startIndex, startIndex+DurationHours) against
// the ordered slot catalog.
type Booking struct {
	BookingID        string               `bson:"booking_id" json:"booking_id"` // external-facing UUID
	UserID           string               `bson:"user_id" json:"user_id"`
	ServiceID        string               `bson:"service_id" json:"service_id"`
	TimeSlotID       string               `bson:"time_slot_id" json:"time_slot_id"` // start slot only
	Date             string               `bson:"date" json:"date"`                 // "YYYY-MM-DD"
	DurationHours    int                  `bson:"duration_hours" json:"duration_hours"`
	Status           string               `bson:"status" json:"status"`
	TotalPayable     primitive.Decimal128 `bson:"total_payable" json:"total_payable"`
	AmountPaid       primitive.Decimal128 `bson:"amount_paid" json:"amount_paid"`
	PaymentOrderID   string               `bson:"payment_order_id,omitempty" json:"payment_order_id,omitempty"`
	PaymentID        string               `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	PaymentSignature string               `bson:"payment_signature,omitempty" json:"-"`
	CreatedAt        time.Time            `bson:"created_at" json:"created_at"`
}

// SlotClaim marks one catalog position as held by an active booking on a
// date. Claims are inserted in the same transaction as the booking; a unique
// index over the claim key turns a lost booking race into a duplicate-key
// error instead of a silent double-booking.
type SlotClaim struct {
	Date      string `bson:"date"`
	ServiceID string `bson:"service_id"`
	SlotIndex int    `bson:"slot_index"`
	SlotID    string `bson:"slot_id"`
	BookingID string `bson:"booking_id"`
}
