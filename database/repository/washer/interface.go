package washerRepo

import (
	"context"

	"washly/config"
	"washly/database"
	"washly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WasherRepository is the data-access contract for washers.
type WasherRepository interface {
	Create(ctx context.Context, washer models.Washer) (string, error)
	GetByID(ctx context.Context, id string) (*models.Washer, error)
	List(ctx context.Context) ([]models.Washer, error)
	Update(ctx context.Context, washer *models.Washer) error
}

type mongoWasherRepo struct {
	coll *mongo.Collection
}

// NewMongoWasherRepo returns a WasherRepository backed by MongoDB.
func NewMongoWasherRepo() WasherRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoWasherRepo{
		coll: db.Collection("washers"),
	}
}
