package admin

import (
	"context"
	"fmt"

	"washly/models"
	"washly/utils"

	"go.uber.org/zap"
)

// Assign binds an active washer to a pending booking. On success the booking
// records the washer's id and the washer moves to busy. Neither entity is
// mutated when any precondition fails.
func (s *DefaultAdminService) Assign(ctx context.Context, bookingID, washerID string) (*models.BookingView, error) {
	release := s.lockBooking(bookingID, washerID)
	defer release()

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	washer, err := s.Washers.GetByID(ctx, washerID)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingPending {
		return nil, utils.NewTransitionError("booking %s is %s; assignment is only offered while pending", bookingID, booking.Status)
	}
	if washer.Status != models.WasherActive {
		return nil, utils.NewTransitionError("washer %s is %s; only active washers can be assigned", washerID, washer.Status)
	}

	booking.AssignedWasherID = washer.ID
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist assignment: %w", err)
	}

	washer.Status = models.WasherBusy
	if err := s.Washers.Update(ctx, washer); err != nil {
		return nil, fmt.Errorf("failed to mark washer busy: %w", err)
	}

	s.notify(ctx, washer.ID, fmt.Sprintf("You have been assigned to booking #%s (%s, %s %s).",
		booking.ID, booking.ServiceType, booking.Date, booking.Time))

	view := models.BookingView{Booking: *booking, AssignedWasher: washer.Name}
	return &view, nil
}

// SetBookingStatus applies a lifecycle transition. Completing a booking with
// an assigned washer frees that washer and credits the wash.
func (s *DefaultAdminService) SetBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.BookingView, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	release := s.lockBooking(bookingID, booking.AssignedWasherID)
	defer release()

	// Re-read under the lock; a concurrent action may have moved the booking.
	booking, err = s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(status) {
		return nil, utils.NewTransitionError("booking %s cannot move from %s to %s", bookingID, booking.Status, status)
	}

	booking.Status = status
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking status: %w", err)
	}

	view := models.BookingView{Booking: *booking}
	if status == models.BookingCompleted && booking.AssignedWasherID != "" {
		washer, err := s.creditWasher(ctx, booking)
		if err != nil {
			zap.L().Error("booking completed but washer credit failed",
				zap.String("bookingId", bookingID),
				zap.String("washerId", booking.AssignedWasherID),
				zap.Error(err))
		} else {
			view.AssignedWasher = washer.Name
		}
	} else if booking.AssignedWasherID != "" {
		if washer, err := s.Washers.GetByID(ctx, booking.AssignedWasherID); err == nil {
			view.AssignedWasher = washer.Name
		}
	}

	s.notify(ctx, booking.CustomerEmail, fmt.Sprintf("Booking #%s status updated to %s.", booking.ID, status))
	return &view, nil
}

// SetWasherStatus applies an admin-driven washer state change.
func (s *DefaultAdminService) SetWasherStatus(ctx context.Context, washerID string, status models.WasherStatus) (*models.Washer, error) {
	release := s.locks.acquire("washer:" + washerID)
	defer release()

	washer, err := s.Washers.GetByID(ctx, washerID)
	if err != nil {
		return nil, err
	}
	if !washer.Status.CanTransitionTo(status) {
		return nil, utils.NewTransitionError("washer %s is already %s", washerID, status)
	}

	washer.Status = status
	if err := s.Washers.Update(ctx, washer); err != nil {
		return nil, fmt.Errorf("failed to persist washer status: %w", err)
	}
	return washer, nil
}

// creditWasher moves the assigned washer back to active and credits the
// completed wash and its amount.
func (s *DefaultAdminService) creditWasher(ctx context.Context, booking *models.Booking) (*models.Washer, error) {
	washer, err := s.Washers.GetByID(ctx, booking.AssignedWasherID)
	if err != nil {
		return nil, err
	}
	washer.Status = models.WasherActive
	washer.CompletedWashes++
	washer.Earnings += booking.Amount
	if err := s.Washers.Update(ctx, washer); err != nil {
		return nil, err
	}
	return washer, nil
}

// lockBooking takes the booking lock, then the washer lock if one is named.
func (s *DefaultAdminService) lockBooking(bookingID, washerID string) func() {
	releaseBooking := s.locks.acquire("booking:" + bookingID)
	if washerID == "" {
		return releaseBooking
	}
	releaseWasher := s.locks.acquire("washer:" + washerID)
	return func() {
		releaseWasher()
		releaseBooking()
	}
}

// notify fires a best-effort notice; failures are logged, never surfaced.
func (s *DefaultAdminService) notify(ctx context.Context, userID, message string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Send(ctx, userID, message); err != nil {
		zap.L().Warn("notification failed", zap.String("userId", userID), zap.Error(err))
	}
}
