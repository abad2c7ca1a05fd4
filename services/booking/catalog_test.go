package booking

import (
	"context"
	"errors"
	"testing"

	"strikersyard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_OrdersByStartTime(t *testing.T) {
	shuffled := []models.TimeSlot{
		{ID: "noon", Start: 12 * 60, End: 13 * 60},
		{ID: "dawn", Start: 6 * 60, End: 7 * 60},
		{ID: "night", Start: 21 * 60, End: 22 * 60},
	}
	cat := NewCatalog(shuffled)

	require.Equal(t, 3, cat.Len())
	assert.Equal(t, "dawn", cat.Slot(0).ID)
	assert.Equal(t, "noon", cat.Slot(1).ID)
	assert.Equal(t, "night", cat.Slot(2).ID)

	i, ok := cat.Index("night")
	require.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestCatalog_IndexUnknownSlot(t *testing.T) {
	cat := testCatalog()
	_, ok := cat.Index("no-such-slot")
	assert.False(t, ok)
}

func TestCatalog_SliceWithinBounds(t *testing.T) {
	cat := testCatalog()

	slots, ok := cat.Slice(0, cat.Len())
	require.True(t, ok)
	assert.Len(t, slots, cat.Len())

	slots, ok = cat.Slice(cat.Len()-1, 1)
	require.True(t, ok)
	assert.Equal(t, slotID(21), slots[0].ID)
}

func TestCatalog_SlicePastEndFails(t *testing.T) {
	cat := testCatalog()

	_, ok := cat.Slice(cat.Len()-1, 2)
	assert.False(t, ok)

	_, ok = cat.Slice(0, cat.Len()+1)
	assert.False(t, ok)

	_, ok = cat.Slice(-1, 1)
	assert.False(t, ok)
}

func TestLoadCatalog(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("ListTimeSlots", mock.Anything).Return([]models.TimeSlot{
		{ID: "slot-09", Start: 9 * 60, End: 10 * 60},
		{ID: "slot-08", Start: 8 * 60, End: 9 * 60},
	}, nil)

	cat, err := LoadCatalog(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, "slot-08", cat.Slot(0).ID)
	repo.AssertExpectations(t)
}

func TestLoadCatalog_EmptyIsAnError(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("ListTimeSlots", mock.Anything).Return([]models.TimeSlot{}, nil)

	_, err := LoadCatalog(context.Background(), repo)
	assert.Error(t, err)
}

func TestLoadCatalog_RepoError(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("ListTimeSlots", mock.Anything).Return(nil, errors.New("mongo down"))

	_, err := LoadCatalog(context.Background(), repo)
	assert.Error(t, err)
}
