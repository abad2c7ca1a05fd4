package bookingRepo

import (
	"context"
	"fmt"

	"strikersyard/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateBookingWithClaims inserts the booking document and its slot claims
// inside one Mongo transaction. The unique index on slot_claims makes two
// concurrent allocations for an overlapping range mutually exclusive: the
// losing insert aborts with a duplicate-key error, surfaced as ErrSlotTaken.
func (repo *MongoBookingRepo) CreateBookingWithClaims(
	ctx context.Context,
	booking *models.Booking,
	claims []models.SlotClaim,
) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		docs := make([]interface{}, 0, len(claims))
		for _, c := range claims {
			docs = append(docs, c)
		}
		if _, err := repo.claimColl.InsertMany(sc, docs); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert slot claims failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
