package admin

import (
	"context"
	"fmt"
	"math"

	"washly/models"
)

// ListBookings returns all bookings with assigned washer names resolved.
func (s *DefaultAdminService) ListBookings(ctx context.Context) ([]models.BookingView, error) {
	bookings, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	washers, err := s.Washers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list washers: %w", err)
	}
	return ResolveWasherNames(bookings, washers), nil
}

// ListWashers returns all washers.
func (s *DefaultAdminService) ListWashers(ctx context.Context) ([]models.Washer, error) {
	washers, err := s.Washers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list washers: %w", err)
	}
	return washers, nil
}

// Metrics derives the dashboard summary from live bookings and washers.
func (s *DefaultAdminService) Metrics(ctx context.Context) (*models.Metrics, error) {
	bookings, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	washers, err := s.Washers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list washers: %w", err)
	}

	m := &models.Metrics{TotalBookings: len(bookings)}

	completed := 0
	for _, b := range bookings {
		if b.Status == models.BookingCompleted {
			completed++
			m.Revenue += b.Amount
		}
	}
	if len(bookings) > 0 {
		m.CompletionRate = math.Round(float64(completed) / float64(len(bookings)) * 100)
	}

	var ratingSum float64
	for _, w := range washers {
		if w.Status == models.WasherActive {
			m.ActiveWashers++
		}
		ratingSum += w.Rating
	}
	if len(washers) > 0 {
		m.CustomerSatisfaction = math.Round(ratingSum/float64(len(washers))*10) / 10
	}
	return m, nil
}

// ResolveWasherNames builds the read model: washer display names are looked
// up by id at read time, never stored on the booking.
func ResolveWasherNames(bookings []models.Booking, washers []models.Washer) []models.BookingView {
	names := make(map[string]string, len(washers))
	for _, w := range washers {
		names[w.ID] = w.Name
	}
	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, models.BookingView{
			Booking:        b,
			AssignedWasher: names[b.AssignedWasherID],
		})
	}
	return views
}
