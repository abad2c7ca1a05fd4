package booking

import (
	"context"
	"time"

	bookingRepo "strikersyard/database/repository/booking"
	"strikersyard/models"
	"strikersyard/utils"
)

// AvailabilityService computes which catalog slots a date has left.
type AvailabilityService interface {
	ComputeAvailability(ctx context.Context, date string) (*models.Availability, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo    bookingRepo.BookingRepository
	Catalog *Catalog
}

// ComputeAvailability annotates the full catalog with taken/free for the
// date. Active bookings are read in one query; each one's occupied range is
// re-derived as [startIndex, startIndex+duration), clipped at the catalog
// end (a malformed over-long booking clips rather than erroring).
func (s *DefaultAvailabilityService) ComputeAvailability(ctx context.Context, date string) (*models.Availability, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, NewValidationError("invalid date format, use YYYY-MM-DD")
	}

	bookings, err := s.Repo.ListActiveByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make([]bool, s.Catalog.Len())
	for _, b := range bookings {
		startIdx, ok := s.Catalog.Index(b.TimeSlotID)
		if !ok {
			continue
		}
		end := startIdx + b.DurationHours
		if end > len(taken) {
			end = len(taken)
		}
		for i := startIdx; i < end; i++ {
			taken[i] = true
		}
	}

	out := &models.Availability{
		Date:  date,
		Slots: make([]models.SlotAvailability, 0, s.Catalog.Len()),
	}
	for i, slot := range s.Catalog.Slots() {
		out.Slots = append(out.Slots, models.SlotAvailability{
			ID:        slot.ID,
			StartTime: utils.MinutesToClock(slot.Start),
			EndTime:   utils.MinutesToClock(slot.End),
			IsTaken:   taken[i],
		})
	}
	return out, nil
}
