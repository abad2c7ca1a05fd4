package booking

import (
	"context"
	"fmt"

	"strikersyard/services/notification"
	"strikersyard/utils"
)

// BuildConfirmation assembles the email view for a settled booking. The end
// slot is re-derived from the catalog with the standard index arithmetic,
// never read from a cached range.
func (s *DefaultBookingService) BuildConfirmation(ctx context.Context, bookingID string) (*notification.BookingConfirmation, error) {
	booking, err := s.Repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("booking not found")
	}

	user, err := s.UserRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("booking user not found")
	}

	svc, err := s.CatalogRepo.GetServiceByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, NewNotFoundError("booking service not found")
	}

	startIdx, ok := s.Catalog.Index(booking.TimeSlotID)
	if !ok {
		return nil, fmt.Errorf("booking %s references an unknown slot %s", bookingID, booking.TimeSlotID)
	}
	endIdx := startIdx + booking.DurationHours - 1
	if endIdx >= s.Catalog.Len() {
		endIdx = s.Catalog.Len() - 1
	}
	startSlot := s.Catalog.Slot(startIdx)
	endSlot := s.Catalog.Slot(endIdx)

	amountPaid, err := utils.D128ToDecimal(booking.AmountPaid)
	if err != nil {
		return nil, err
	}

	return &notification.BookingConfirmation{
		UserName:      user.Name,
		UserEmail:     user.Email,
		ServiceName:   svc.Name,
		Date:          booking.Date,
		TimeRange:     fmt.Sprintf("%s - %s", utils.MinutesToClock(startSlot.Start), utils.MinutesToClock(endSlot.End)),
		DurationHours: booking.DurationHours,
		AmountPaid:    amountPaid.StringFixed(2),
		Status:        booking.Status,
		BookingID:     booking.BookingID,
	}, nil
}
