package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "strikersyard/database/repository/booking"
	"strikersyard/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBookingService(repo *MockBookingRepository, catRepo *MockCatalogRepository, gw *MockGateway, sched *MockScheduler) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:                repo,
		CatalogRepo:         catRepo,
		Catalog:             testCatalog(),
		Gateway:             gw,
		Tasks:               sched,
		Logger:              zap.NewNop(),
		PartialFraction:     decimal.RequireFromString("0.25"),
		EveningStart:        17 * 60,
		ExpiryWindow:        10 * time.Minute,
		GlobalConflictScope: true,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	gw := new(MockGateway)
	sched := new(MockScheduler)
	svc := newTestBookingService(repo, catRepo, gw, sched)

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)
	repo.On("ListActiveByDate", mock.Anything, "2026-09-05").Return([]models.Booking{}, nil)

	var captured *models.Booking
	repo.On("CreateBookingWithClaims", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*models.Booking)
			claims := args.Get(2).([]models.SlotClaim)
			require.Len(t, claims, 2)
			assert.Equal(t, 10, claims[0].SlotIndex)
			assert.Equal(t, 11, claims[1].SlotIndex)
			assert.Equal(t, captured.BookingID, claims[0].BookingID)
		}).
		Return(nil)
	sched.On("ScheduleExpiry", mock.Anything, mock.Anything).Return(nil)
	// 500 + 800 = 1300 rupees → 130000 paise.
	gw.On("CreateOrder", mock.Anything, int64(130000), "INR", mock.Anything).Return("order_abc", nil)
	gw.On("KeyID").Return("rzp_test_key")
	repo.On("SetPaymentOrder", mock.Anything, mock.Anything, "order_abc").Return(nil)

	receipt, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:     "turf-5v5",
		TimeSlotID:    slotID(16),
		Date:          "2026-09-05",
		DurationHours: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "order_abc", receipt.OrderID)
	assert.Equal(t, "rzp_test_key", receipt.GatewayKeyID)
	assert.Equal(t, int64(130000), receipt.Amount)
	assert.Equal(t, models.BookingStatusPending, captured.Status)
	assert.Equal(t, slotID(16), captured.TimeSlotID)
	assert.Equal(t, 2, captured.DurationHours)
	repo.AssertExpectations(t)
	gw.AssertExpectations(t)
	sched.AssertExpectations(t)
}

func TestCreateBooking_PartialPaymentChargesQuarter(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	gw := new(MockGateway)
	sched := new(MockScheduler)
	svc := newTestBookingService(repo, catRepo, gw, sched)

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)
	repo.On("ListActiveByDate", mock.Anything, "2026-09-05").Return([]models.Booking{}, nil)
	repo.On("CreateBookingWithClaims", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sched.On("ScheduleExpiry", mock.Anything, mock.Anything).Return(nil)
	// Total 1300, quarter is 325 rupees → 32500 paise.
	gw.On("CreateOrder", mock.Anything, int64(32500), "INR", mock.Anything).Return("order_p", nil)
	gw.On("KeyID").Return("rzp_test_key")
	repo.On("SetPaymentOrder", mock.Anything, mock.Anything, "order_p").Return(nil)

	receipt, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:        "turf-5v5",
		TimeSlotID:       slotID(16),
		Date:             "2026-09-05",
		DurationHours:    2,
		IsPartialPayment: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(32500), receipt.Amount)
	assert.True(t, receipt.IsPartialPayment)
	gw.AssertExpectations(t)
}

func TestCreateBooking_DefaultsDurationToOneHour(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	gw := new(MockGateway)
	sched := new(MockScheduler)
	svc := newTestBookingService(repo, catRepo, gw, sched)

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)
	repo.On("ListActiveByDate", mock.Anything, "2026-09-05").Return([]models.Booking{}, nil)
	repo.On("CreateBookingWithClaims", mock.Anything, mock.Anything, mock.MatchedBy(func(claims []models.SlotClaim) bool {
		return len(claims) == 1
	})).Return(nil)
	sched.On("ScheduleExpiry", mock.Anything, mock.Anything).Return(nil)
	gw.On("CreateOrder", mock.Anything, int64(50000), "INR", mock.Anything).Return("order_1h", nil)
	gw.On("KeyID").Return("rzp_test_key")
	repo.On("SetPaymentOrder", mock.Anything, mock.Anything, "order_1h").Return(nil)

	receipt, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:  "turf-5v5",
		TimeSlotID: slotID(10),
		Date:       "2026-09-05",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.Booking.DurationHours)
}

func TestCreateBooking_UnknownService(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	svc := newTestBookingService(repo, catRepo, new(MockGateway), new(MockScheduler))

	catRepo.On("GetServiceByID", mock.Anything, "nope").Return(nil, nil)

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:  "nope",
		TimeSlotID: slotID(10),
		Date:       "2026-09-05",
	})
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, code)
}

func TestCreateBooking_UnknownSlot(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	svc := newTestBookingService(repo, catRepo, new(MockGateway), new(MockScheduler))

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:  "turf-5v5",
		TimeSlotID: "slot-99",
		Date:       "2026-09-05",
	})
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, code)
}

func TestCreateBooking_RunPastClosingIsInsufficient(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	svc := newTestBookingService(repo, catRepo, new(MockGateway), new(MockScheduler))

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)

	// 3 hours starting at the 21:00 slot runs past the last defined slot.
	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:     "turf-5v5",
		TimeSlotID:    slotID(21),
		Date:          "2026-09-05",
		DurationHours: 3,
	})
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeInsufficientSlots, code)
	repo.AssertNotCalled(t, "CreateBookingWithClaims", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_BadDate(t *testing.T) {
	svc := newTestBookingService(new(MockBookingRepository), new(MockCatalogRepository), new(MockGateway), new(MockScheduler))

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:  "turf-5v5",
		TimeSlotID: slotID(10),
		Date:       "next tuesday",
	})
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, code)
}

func TestCreateBooking_OverlapDetectedBeforeInsert(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	svc := newTestBookingService(repo, catRepo, new(MockGateway), new(MockScheduler))

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)
	// Existing 2h booking at 16:00 overlaps a requested 2h run at 17:00.
	repo.On("ListActiveByDate", mock.Anything, "2026-09-05").Return([]models.Booking{
		{BookingID: "b0", ServiceID: "other-svc", TimeSlotID: slotID(16), DurationHours: 2, Status: models.BookingStatusPaid},
	}, nil)

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:     "turf-5v5",
		TimeSlotID:    slotID(17),
		Date:          "2026-09-05",
		DurationHours: 2,
	})
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeSlotConflict, code)
	repo.AssertNotCalled(t, "CreateBookingWithClaims", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_ServiceScopeIgnoresOtherServices(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	gw := new(MockGateway)
	sched := new(MockScheduler)
	svc := newTestBookingService(repo, catRepo, gw, sched)
	svc.GlobalConflictScope = false

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)
	repo.On("ListActiveByDate", mock.Anything, "2026-09-05").Return([]models.Booking{
		{BookingID: "b0", ServiceID: "other-svc", TimeSlotID: slotID(17), DurationHours: 1, Status: models.BookingStatusPaid},
	}, nil)
	repo.On("CreateBookingWithClaims", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sched.On("ScheduleExpiry", mock.Anything, mock.Anything).Return(nil)
	gw.On("CreateOrder", mock.Anything, mock.Anything, "INR", mock.Anything).Return("order_s", nil)
	gw.On("KeyID").Return("rzp_test_key")
	repo.On("SetPaymentOrder", mock.Anything, mock.Anything, "order_s").Return(nil)

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:     "turf-5v5",
		TimeSlotID:    slotID(17),
		Date:          "2026-09-05",
		DurationHours: 1,
	})
	assert.NoError(t, err)
}

func TestCreateBooking_LostRaceMapsToSlotConflict(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	sched := new(MockScheduler)
	svc := newTestBookingService(repo, catRepo, new(MockGateway), sched)

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)
	repo.On("ListActiveByDate", mock.Anything, "2026-09-05").Return([]models.Booking{}, nil)
	repo.On("CreateBookingWithClaims", mock.Anything, mock.Anything, mock.Anything).Return(bookingRepo.ErrSlotTaken)

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:     "turf-5v5",
		TimeSlotID:    slotID(16),
		Date:          "2026-09-05",
		DurationHours: 1,
	})
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeSlotConflict, code)
	sched.AssertNotCalled(t, "ScheduleExpiry", mock.Anything, mock.Anything)
}

func TestCreateBooking_ExpiryArmedBeforeGatewayCall(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	gw := new(MockGateway)
	sched := new(MockScheduler)
	svc := newTestBookingService(repo, catRepo, gw, sched)

	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)
	repo.On("ListActiveByDate", mock.Anything, "2026-09-05").Return([]models.Booking{}, nil)
	repo.On("CreateBookingWithClaims", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sched.On("ScheduleExpiry", mock.Anything, mock.Anything).Return(nil)
	gw.On("CreateOrder", mock.Anything, mock.Anything, "INR", mock.Anything).Return("", errors.New("gateway timeout"))

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID:     "turf-5v5",
		TimeSlotID:    slotID(16),
		Date:          "2026-09-05",
		DurationHours: 1,
	})
	require.Error(t, err)
	// Even though the order failed, the expiry was scheduled so the claimed
	// slots will be reclaimed.
	sched.AssertCalled(t, "ScheduleExpiry", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SetPaymentOrder", mock.Anything, mock.Anything, mock.Anything)
}
