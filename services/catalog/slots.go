package catalog

import (
	"context"
	"fmt"
	"time"

	"washly/models"
	"washly/utils"
)

// Slot grid bounds: every half hour from 08:00 through 18:30.
const (
	slotStartHour = 8
	slotEndHour   = 18
	bookingWindow = 7 // days offered, starting today
	isoDateLayout = "2006-01-02"
)

// AvailableDates returns the bookable date window starting at now's date.
func (s *DefaultCatalogService) AvailableDates(now time.Time) []string {
	dates := make([]string, 0, bookingWindow)
	for i := 0; i < bookingWindow; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(isoDateLayout))
	}
	return dates
}

// AvailableSlots computes the slot grid for a date. A slot is unavailable
// iff a non-cancelled booking already occupies it.
func (s *DefaultCatalogService) AvailableSlots(ctx context.Context, date string) ([]models.TimeSlot, error) {
	if _, err := time.Parse(isoDateLayout, date); err != nil {
		return nil, utils.NewValidationError("invalid date %q, expected YYYY-MM-DD", date)
	}

	booked, err := s.bookedTimes(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	var slots []models.TimeSlot
	for hour := slotStartHour; hour <= slotEndHour; hour++ {
		for _, minute := range []int{0, 30} {
			t := fmt.Sprintf("%02d:%02d", hour, minute)
			slots = append(slots, models.TimeSlot{
				ID:        t,
				Time:      t,
				Available: !booked[t],
			})
		}
	}
	return slots, nil
}

func (s *DefaultCatalogService) bookedTimes(ctx context.Context, date string) (map[string]bool, error) {
	bookings, err := s.Bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.Status != models.BookingCancelled {
			booked[b.Time] = true
		}
	}
	return booked, nil
}
