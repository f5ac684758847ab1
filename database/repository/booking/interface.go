package bookingRepo

import (
	"context"

	"washly/config"
	"washly/database"
	"washly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the data-access contract for bookings. The admin and
// wizard services depend on this interface only, never on shared state.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error)
	ListByWasherAndDate(ctx context.Context, washerID, date string) ([]models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
