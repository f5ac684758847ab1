package washerRepo

import (
	"context"
	"errors"

	"washly/models"
	"washly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new washer and returns its ID.
func (r *mongoWasherRepo) Create(ctx context.Context, washer models.Washer) (string, error) {
	if washer.ID == "" {
		washer.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, washer); err != nil {
		return "", err
	}
	return washer.ID, nil
}

// GetByID returns a washer by its ID.
func (r *mongoWasherRepo) GetByID(ctx context.Context, id string) (*models.Washer, error) {
	var washer models.Washer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&washer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFoundError("washer %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &washer, nil
}

// List returns all washers.
func (r *mongoWasherRepo) List(ctx context.Context) ([]models.Washer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var washers []models.Washer
	if err := cursor.All(ctx, &washers); err != nil {
		return nil, err
	}
	return washers, nil
}

// Update replaces a stored washer.
func (r *mongoWasherRepo) Update(ctx context.Context, washer *models.Washer) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": washer.ID}, washer)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("washer %s not found", washer.ID)
	}
	return nil
}
