// File: database/repository/admission/interface.go
package admissionRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"medibook/config"
	"medibook/database"
	"medibook/models"
)

type AdmissionRepository interface {
	Create(ctx context.Context, admission *models.Admission) error
	GetByID(ctx context.Context, id string) (*models.Admission, error)
	List(ctx context.Context, status string) ([]models.Admission, error)
	Discharge(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoAdmissionRepo struct {
	coll *mongo.Collection
}

// NewMongoAdmissionRepo constructs a new MongoDB AdmissionRepository.
func NewMongoAdmissionRepo() AdmissionRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAdmissionRepo{
		coll: db.Collection("admissions"),
	}
}
