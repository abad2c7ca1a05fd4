package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"strikersyard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetPaymentOrder stores the gateway order reference on the booking.
func (repo *MongoBookingRepo) SetPaymentOrder(ctx context.Context, bookingID, orderID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"booking_id": bookingID}
	update := bson.M{"$set": bson.M{"payment_order_id": orderID}}
	if _, err := repo.bookingColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error storing payment order for booking %s: %w", bookingID, err)
	}
	return nil
}

// MarkPaid advances a pending booking to the given settled status. The status
// guard lives in the filter, so the check-and-set is a single atomic update.
func (repo *MongoBookingRepo) MarkPaid(
	ctx context.Context,
	bookingID, paymentID, signature, status string,
	amountPaid primitive.Decimal128,
) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"booking_id": bookingID,
		"status":     models.BookingStatusPending,
	}
	update := bson.M{"$set": bson.M{
		"status":            status,
		"payment_id":        paymentID,
		"payment_signature": signature,
		"amount_paid":       amountPaid,
	}}
	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error settling booking %s: %w", bookingID, err)
	}
	return res.ModifiedCount == 1, nil
}

// CancelIfPending moves a pending booking to cancelled. Same conditional
// single-document update, which is what makes the expiry path idempotent.
func (repo *MongoBookingRepo) CancelIfPending(ctx context.Context, bookingID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"booking_id": bookingID,
		"status":     models.BookingStatusPending,
	}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}
	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error cancelling booking %s: %w", bookingID, err)
	}
	return res.ModifiedCount == 1, nil
}

// ReleaseClaims removes every slot claim held by the booking so the range
// reads as free again.
func (repo *MongoBookingRepo) ReleaseClaims(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.claimColl.DeleteMany(ctx, bson.M{"booking_id": bookingID}); err != nil {
		return fmt.Errorf("error releasing slot claims for booking %s: %w", bookingID, err)
	}
	return nil
}
