package booking

import (
	"context"

	"strikersyard/models"
)

// ListUserBookings returns the caller's bookings, newest first.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// GetUserBooking fetches one booking scoped to the caller.
func (s *DefaultBookingService) GetUserBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByBookingIDAndUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("booking not found")
	}
	return booking, nil
}
