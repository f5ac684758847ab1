package catalog

import (
	"context"
	"time"

	"washly/models"

	bookingRepo "washly/database/repository/booking"
)

// BookingFee is the flat fee added to every package price at checkout.
const BookingFee = 2.99

// CatalogService exposes the bookable packages and the availability grid.
type CatalogService interface {
	ListPackages() []models.ServicePackage
	PackageByID(id string) (*models.ServicePackage, error)
	AvailableDates(now time.Time) []string
	AvailableSlots(ctx context.Context, date string) ([]models.TimeSlot, error)
}

// DefaultCatalogService implements CatalogService. Availability is derived
// from existing bookings, never from random stand-ins.
type DefaultCatalogService struct {
	Bookings bookingRepo.BookingRepository
}
