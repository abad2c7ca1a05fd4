package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"strikersyard/models"
	"strikersyard/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBookingWithClaims(ctx context.Context, booking *models.Booking, claims []models.SlotClaim) error {
	args := m.Called(ctx, booking, claims)
	return args.Error(0)
}

func (m *MockBookingRepository) ListActiveByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByBookingIDAndUser(ctx context.Context, bookingID, userID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByOrderIDAndUser(ctx context.Context, orderID, userID string) (*models.Booking, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetPaymentOrder(ctx context.Context, bookingID, orderID string) error {
	args := m.Called(ctx, bookingID, orderID)
	return args.Error(0)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID, paymentID, signature, status string, amountPaid primitive.Decimal128) (bool, error) {
	args := m.Called(ctx, bookingID, paymentID, signature, status, amountPaid)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CancelIfPending(ctx context.Context, bookingID string) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ReleaseClaims(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepository) ListStalePending(ctx context.Context, createdBefore time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, createdBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) EnsureIndexes(scopeGlobal bool) error {
	args := m.Called(scopeGlobal)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListTimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimeSlot), args.Error(1)
}

func (m *MockCatalogRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockCatalogRepository) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockCatalogRepository) EnsureIndexes() error {
	args := m.Called()
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, name, email string) (*models.User, error) {
	args := m.Called(ctx, id, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	args := m.Called(ctx, id, tokenHash)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureIndexes() error {
	args := m.Called()
	return args.Error(0)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	args := m.Called(ctx, amountMinor, currency, receipt)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) VerifySignature(orderID, paymentID, signature string) error {
	args := m.Called(orderID, paymentID, signature)
	return args.Error(0)
}

func (m *MockGateway) KeyID() string {
	args := m.Called()
	return args.String(0)
}

type MockScheduler struct {
	mock.Mock
}

func (m *MockScheduler) ScheduleExpiry(bookingID string, fireAt time.Time) error {
	args := m.Called(bookingID, fireAt)
	return args.Error(0)
}

func (m *MockScheduler) EnqueueConfirmationEmail(bookingID string) error {
	args := m.Called(bookingID)
	return args.Error(0)
}

// Test fixtures

func d128(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := utils.DecimalToD128(decimal.RequireFromString(s))
	if err != nil {
		t.Fatalf("bad decimal fixture %q: %v", s, err)
	}
	return d
}

// testCatalog covers 06:00 through 22:00, one-hour slots named slot-06..slot-21.
func testCatalog() *Catalog {
	var slots []models.TimeSlot
	for h := 6; h < 22; h++ {
		slots = append(slots, models.TimeSlot{
			ID:    slotID(h),
			Start: h * 60,
			End:   (h + 1) * 60,
		})
	}
	return NewCatalog(slots)
}

func slotID(hour int) string {
	return fmt.Sprintf("slot-%02d", hour)
}

func testService(t *testing.T) *models.Service {
	return &models.Service{
		ID:             "turf-5v5",
		Name:           "5-a-side Turf",
		PricePerHour:   d128(t, "500"),
		EveningPricing: d128(t, "800"),
	}
}
