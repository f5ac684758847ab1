package washes

import (
	"context"
	"fmt"

	"washly/models"
	"washly/services/admin"
	"washly/utils"
)

// CustomerWashes lists a customer's bookings, upcoming first.
func (s *DefaultWashesService) CustomerWashes(ctx context.Context, email string) (*CustomerWashes, error) {
	if email == "" {
		return nil, utils.NewValidationError("customer email is required")
	}

	bookings, err := s.Bookings.ListByCustomerEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	washers, err := s.Washers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list washers: %w", err)
	}

	out := &CustomerWashes{
		Upcoming: []models.BookingView{},
		Past:     []models.BookingView{},
	}
	for _, view := range admin.ResolveWasherNames(bookings, washers) {
		if view.Status.Terminal() {
			out.Past = append(out.Past, view)
		} else {
			out.Upcoming = append(out.Upcoming, view)
		}
	}
	return out, nil
}

// CancelWash cancels a customer's booking via the shared status machine, so
// the same terminal-state rules apply as on the dashboard.
func (s *DefaultWashesService) CancelWash(ctx context.Context, bookingID string) (*models.BookingView, error) {
	return s.Admin.SetBookingStatus(ctx, bookingID, models.BookingCancelled)
}

// WasherDay returns a washer's jobs for a date plus the day's performance.
func (s *DefaultWashesService) WasherDay(ctx context.Context, washerID, date string) (*WasherDay, error) {
	washer, err := s.Washers.GetByID(ctx, washerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.Bookings.ListByWasherAndDate(ctx, washerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list washer jobs: %w", err)
	}

	day := &WasherDay{Washer: *washer, Jobs: []models.BookingView{}}
	for _, b := range bookings {
		day.Jobs = append(day.Jobs, models.BookingView{Booking: b, AssignedWasher: washer.Name})
		if b.Status == models.BookingCompleted {
			day.CompletedToday++
			day.EarningsToday += b.Amount
		}
	}
	return day, nil
}
