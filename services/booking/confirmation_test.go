package booking

import (
	"context"
	"testing"

	"strikersyard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildConfirmation(t *testing.T) {
	repo := new(MockBookingRepository)
	catRepo := new(MockCatalogRepository)
	userRepo := new(MockUserRepository)
	svc := newTestBookingService(repo, catRepo, new(MockGateway), new(MockScheduler))
	svc.UserRepo = userRepo

	b := pendingBooking(t)
	b.Status = models.BookingStatusPaid
	b.AmountPaid = d128(t, "1600")
	repo.On("GetByBookingID", mock.Anything, "bk-1").Return(b, nil)
	userRepo.On("GetByID", mock.Anything, "user-1").Return(&models.User{
		ID: "user-1", Name: "Asha", Email: "asha@example.com",
	}, nil)
	catRepo.On("GetServiceByID", mock.Anything, "turf-5v5").Return(testService(t), nil)

	conf, err := svc.BuildConfirmation(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", conf.UserName)
	assert.Equal(t, "asha@example.com", conf.UserEmail)
	assert.Equal(t, "5-a-side Turf", conf.ServiceName)
	// 2 hours starting at the 17:00 slot.
	assert.Equal(t, "17:00 - 19:00", conf.TimeRange)
	assert.Equal(t, "1600.00", conf.AmountPaid)
	assert.Equal(t, models.BookingStatusPaid, conf.Status)
}

func TestBuildConfirmation_UnknownBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newTestBookingService(repo, new(MockCatalogRepository), new(MockGateway), new(MockScheduler))

	repo.On("GetByBookingID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.BuildConfirmation(context.Background(), "ghost")
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, code)
}
