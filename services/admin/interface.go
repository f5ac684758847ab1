package admin

import (
	"context"

	"washly/models"
	"washly/services/notification"

	bookingRepo "washly/database/repository/booking"
	washerRepo "washly/database/repository/washer"
)

// AdminService drives the booking and washer status machines from the
// operations dashboard. Every mutation validates the transition against the
// current state and produces a notification side effect on success.
type AdminService interface {
	ListBookings(ctx context.Context) ([]models.BookingView, error)
	ListWashers(ctx context.Context) ([]models.Washer, error)
	Metrics(ctx context.Context) (*models.Metrics, error)
	Assign(ctx context.Context, bookingID, washerID string) (*models.BookingView, error)
	SetBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.BookingView, error)
	SetWasherStatus(ctx context.Context, washerID string, status models.WasherStatus) (*models.Washer, error)
}

// DefaultAdminService implements AdminService on top of the injected
// repositories. Mutations on the same entity are serialized by id.
type DefaultAdminService struct {
	Bookings bookingRepo.BookingRepository
	Washers  washerRepo.WasherRepository
	Notifier notification.NotificationService

	locks entityLocks
}
