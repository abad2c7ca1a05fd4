package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes on the bookings and slot_claims
// collections. The claim uniqueness key depends on the configured conflict
// scope: global blocking leaves the service out of the key, so two services
// cannot double-book the same physical slot.
func (repo *MongoBookingRepo) EnsureIndexes(scopeGlobal bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_booking_id"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("date_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("user_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "payment_order_id", Value: 1}},
			Options: options.Index().SetName("payment_order_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("status_created_idx"),
		},
	}
	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	claimKeys := bson.D{{Key: "date", Value: 1}, {Key: "slot_index", Value: 1}}
	if !scopeGlobal {
		claimKeys = bson.D{{Key: "date", Value: 1}, {Key: "service_id", Value: 1}, {Key: "slot_index", Value: 1}}
	}
	claimIndexes := []mongo.IndexModel{
		{
			Keys:    claimKeys,
			Options: options.Index().SetUnique(true).SetName("unique_claim"),
		},
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetName("claim_booking_idx"),
		},
	}
	if _, err := repo.claimColl.Indexes().CreateMany(ctx, claimIndexes); err != nil {
		return fmt.Errorf("failed to create slot claim indexes: %w", err)
	}
	return nil
}
