// File: database/repository/patient/interface.go
package patientRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"medibook/config"
	"medibook/database"
	"medibook/models"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByPhone(ctx context.Context, phone string) (*models.Patient, error)
	List(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, id string, update map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoPatientRepo{
		coll: db.Collection("patients"),
	}
}
