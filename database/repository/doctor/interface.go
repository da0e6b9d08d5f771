// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"medibook/config"
	"medibook/database"
	"medibook/models"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	List(ctx context.Context, specialty string, activeOnly bool) ([]models.Doctor, error)
	Update(ctx context.Context, id string, update map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	UpdateSchedule(ctx context.Context, id string, schedule models.ScheduleConfig) error
	AddBlockedDate(ctx context.Context, id string, date string) error
	RemoveBlockedDate(ctx context.Context, id string, date string) error
	EnsureIndexes() error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
}
