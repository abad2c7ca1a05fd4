package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "strikersyard/database/repository/booking"
	"strikersyard/models"
	"strikersyard/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateBooking resolves the requested contiguous run, prices it, and commits
// the booking with its slot claims as one unit. The gateway order is created
// only after the local transaction commits, so a slow or failing gateway
// never holds the contended slots hostage; an unpaid booking is reclaimed by
// the expiry task.
func (s *DefaultBookingService) CreateBooking(
	ctx context.Context,
	userID string,
	req models.CreateBookingRequest,
) (*models.BookingReceipt, error) {
	if req.DurationHours <= 0 {
		req.DurationHours = 1
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, NewValidationError("invalid date format, use YYYY-MM-DD")
	}

	svc, err := s.CatalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, NewNotFoundError("unknown service")
	}

	startIdx, ok := s.Catalog.Index(req.TimeSlotID)
	if !ok {
		return nil, NewNotFoundError("unknown time slot")
	}

	requiredSlots, ok := s.Catalog.Slice(startIdx, req.DurationHours)
	if !ok {
		return nil, NewInsufficientSlotsError("not enough consecutive slots available")
	}

	// Early conflict read for a friendly error on pre-existing overlaps. The
	// unique claim index remains the authoritative guard for races.
	if err := s.checkConflicts(ctx, req.Date, req.ServiceID, startIdx, req.DurationHours); err != nil {
		return nil, err
	}

	total, err := PriceRun(requiredSlots, *svc, s.EveningStart)
	if err != nil {
		return nil, err
	}
	totalD128, err := utils.DecimalToD128(total)
	if err != nil {
		return nil, err
	}
	zeroD128, err := utils.DecimalToD128(decimal.Zero)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		BookingID:     uuid.New().String(),
		UserID:        userID,
		ServiceID:     svc.ID,
		TimeSlotID:    req.TimeSlotID,
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Status:        models.BookingStatusPending,
		TotalPayable:  totalD128,
		AmountPaid:    zeroD128,
		CreatedAt:     now,
	}

	claims := make([]models.SlotClaim, 0, req.DurationHours)
	for i, slot := range requiredSlots {
		claims = append(claims, models.SlotClaim{
			Date:      req.Date,
			ServiceID: svc.ID,
			SlotIndex: startIdx + i,
			SlotID:    slot.ID,
			BookingID: booking.BookingID,
		})
	}

	if err := s.Repo.CreateBookingWithClaims(ctx, booking, claims); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewSlotConflictError("one or more selected hours are already booked")
		}
		return nil, err
	}

	// Armed before the gateway call so a failed order still gets cleaned up.
	if err := s.Tasks.ScheduleExpiry(booking.BookingID, now.Add(s.ExpiryWindow)); err != nil {
		s.Logger.Error("failed to schedule booking expiry",
			zap.String("bookingID", booking.BookingID), zap.Error(err))
	}

	payable := total
	if req.IsPartialPayment {
		payable = PartialAmount(total, s.PartialFraction)
	}
	amountMinor := ToMinorUnits(payable)

	orderID, err := s.Gateway.CreateOrder(ctx, amountMinor, "INR", booking.BookingID)
	if err != nil {
		return nil, fmt.Errorf("payment order creation failed: %w", err)
	}
	if err := s.Repo.SetPaymentOrder(ctx, booking.BookingID, orderID); err != nil {
		return nil, err
	}
	booking.PaymentOrderID = orderID

	return &models.BookingReceipt{
		Booking:          *booking,
		OrderID:          orderID,
		GatewayKeyID:     s.Gateway.KeyID(),
		Amount:           amountMinor,
		IsPartialPayment: req.IsPartialPayment,
	}, nil
}

// checkConflicts rejects a range that overlaps an active booking. Under
// global scope every service blocks every other; under service scope only
// bookings of the same service count.
func (s *DefaultBookingService) checkConflicts(ctx context.Context, date, serviceID string, startIdx, duration int) error {
	active, err := s.Repo.ListActiveByDate(ctx, date)
	if err != nil {
		return err
	}
	reqEnd := startIdx + duration
	for _, b := range active {
		if !s.GlobalConflictScope && b.ServiceID != serviceID {
			continue
		}
		idx, ok := s.Catalog.Index(b.TimeSlotID)
		if !ok {
			continue
		}
		end := idx + b.DurationHours
		if end > s.Catalog.Len() {
			end = s.Catalog.Len()
		}
		if startIdx < end && idx < reqEnd {
			return NewSlotConflictError("one or more selected hours are already booked")
		}
	}
	return nil
}
