package booking

import (
	"context"
	"time"

	bookingRepo "strikersyard/database/repository/booking"
	catalogRepo "strikersyard/database/repository/catalog"
	userRepo "strikersyard/database/repository/user"
	"strikersyard/models"
	"strikersyard/services/notification"
	"strikersyard/services/payment"
	"strikersyard/services/tasks"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BookingService is the allocation and payment-lifecycle core.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.BookingReceipt, error)
	VerifyPayment(ctx context.Context, userID string, req models.VerifyPaymentRequest) (*models.VerifyPaymentResult, error)
	Expire(ctx context.Context, bookingID string) error
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetUserBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	BuildConfirmation(ctx context.Context, bookingID string) (*notification.BookingConfirmation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	CatalogRepo catalogRepo.CatalogRepository
	UserRepo    userRepo.UserRepository
	Catalog     *Catalog
	Gateway     payment.Gateway
	Tasks       tasks.Scheduler
	Logger      *zap.Logger

	// PartialFraction is the upfront share collected when the caller opts
	// into partial payment (e.g. 0.25).
	PartialFraction decimal.Decimal
	// EveningStart is the evening pricing cutoff in minutes from midnight.
	EveningStart int
	// ExpiryWindow is how long an unpaid booking holds its slots.
	ExpiryWindow time.Duration
	// GlobalConflictScope blocks slots across services when true (one
	// physical ground); false reproduces the historical per-service scoping.
	GlobalConflictScope bool
}
