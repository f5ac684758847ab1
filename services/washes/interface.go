package washes

import (
	"context"

	"washly/models"
	"washly/services/admin"

	bookingRepo "washly/database/repository/booking"
	washerRepo "washly/database/repository/washer"
)

// CustomerWashes splits a customer's bookings into upcoming and past.
type CustomerWashes struct {
	Upcoming []models.BookingView `json:"upcoming"`
	Past     []models.BookingView `json:"past"`
}

// WasherDay is a washer's job list and performance summary for one date.
type WasherDay struct {
	Washer         models.Washer        `json:"washer"`
	Jobs           []models.BookingView `json:"jobs"`
	CompletedToday int                  `json:"completedToday"`
	EarningsToday  float64              `json:"earningsToday"`
}

// WashesService backs the customer "my washes" area and the washer portal.
type WashesService interface {
	CustomerWashes(ctx context.Context, email string) (*CustomerWashes, error)
	CancelWash(ctx context.Context, bookingID string) (*models.BookingView, error)
	WasherDay(ctx context.Context, washerID, date string) (*WasherDay, error)
}

// DefaultWashesService implements WashesService. Cancellation goes through
// the same booking status machine the admin dashboard uses.
type DefaultWashesService struct {
	Bookings bookingRepo.BookingRepository
	Washers  washerRepo.WasherRepository
	Admin    admin.AdminService
}
