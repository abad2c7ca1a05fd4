package booking

import (
	"context"
	"errors"

	"strikersyard/models"
	"strikersyard/services/payment"

	"go.uber.org/zap"
)

// VerifyPayment checks the gateway signature and settles the booking. The
// full total_payable is recorded as paid even for partial payments; only the
// status distinguishes them. A failed verification leaves the booking
// pending, to be retried or expired.
func (s *DefaultBookingService) VerifyPayment(
	ctx context.Context,
	userID string,
	req models.VerifyPaymentRequest,
) (*models.VerifyPaymentResult, error) {
	if err := s.Gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		if errors.Is(err, payment.ErrVerificationFailed) {
			return nil, NewVerificationFailedError("payment verification failed")
		}
		return nil, err
	}

	booking, err := s.Repo.GetByOrderIDAndUser(ctx, req.OrderID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("booking not found")
	}

	status := models.BookingStatusPaid
	if req.IsPartialPayment {
		status = models.BookingStatusPartial
	}

	settled, err := s.Repo.MarkPaid(ctx, booking.BookingID, req.PaymentID, req.Signature, status, booking.TotalPayable)
	if err != nil {
		return nil, err
	}
	if !settled {
		// Raced with the expiry timer or a duplicate verification. Re-read to
		// tell which; a settled booking is reported as success without any
		// further mutation.
		current, err := s.Repo.GetByBookingID(ctx, booking.BookingID)
		if err != nil {
			return nil, err
		}
		if current == nil || current.Status == models.BookingStatusCancelled {
			return nil, NewValidationError("booking is no longer payable")
		}
		return &models.VerifyPaymentResult{
			Success:   true,
			Message:   "Payment already verified",
			BookingID: booking.BookingID,
		}, nil
	}

	// Fire-and-forget: the confirmation email rides the task queue with its
	// own retries, never this request's failure domain.
	if err := s.Tasks.EnqueueConfirmationEmail(booking.BookingID); err != nil {
		s.Logger.Error("failed to enqueue confirmation email",
			zap.String("bookingID", booking.BookingID), zap.Error(err))
	}

	return &models.VerifyPaymentResult{
		Success:   true,
		Message:   "Payment verified successfully",
		BookingID: booking.BookingID,
	}, nil
}

// Expire cancels a booking that never received a verified payment. Safe to
// run late or more than once: the conditional update writes nothing unless
// the booking is still pending.
func (s *DefaultBookingService) Expire(ctx context.Context, bookingID string) error {
	cancelled, err := s.Repo.CancelIfPending(ctx, bookingID)
	if err != nil {
		return err
	}
	if !cancelled {
		// Missing or already settled bookings are a no-op. A booking that is
		// already cancelled falls through so a rerun can repair claims left
		// behind by a crash between the cancel and the release.
		current, err := s.Repo.GetByBookingID(ctx, bookingID)
		if err != nil {
			return err
		}
		if current == nil || current.Status != models.BookingStatusCancelled {
			return nil
		}
	}

	if err := s.Repo.ReleaseClaims(ctx, bookingID); err != nil {
		return err
	}
	if cancelled {
		s.Logger.Info("expired unpaid booking", zap.String("bookingID", bookingID))
	}
	return nil
}
