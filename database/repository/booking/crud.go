package bookingRepo

import (
	"context"
	"errors"
	"time"

	"washly/models"
	"washly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFoundError("booking %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns all bookings, newest first.
func (r *mongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

// ListByCustomerEmail fetches all bookings made by a customer.
func (r *mongoBookingRepo) ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"customer_email": email})
}

// ListByWasherAndDate fetches a washer's bookings for a date.
func (r *mongoBookingRepo) ListByWasherAndDate(ctx context.Context, washerID, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"assigned_washer_id": washerID, "date": date})
}

// ListByDate fetches all bookings for a date. The availability grid is
// derived from this query.
func (r *mongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

// Update replaces a stored booking.
func (r *mongoBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	booking.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": booking.ID}, booking)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("booking %s not found", booking.ID)
	}
	return nil
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
