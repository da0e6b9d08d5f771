// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"medibook/config"
	"medibook/database"
	"medibook/models"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	GetByPatientDoctorDate(ctx context.Context, patientID, doctorID, date string) ([]models.Appointment, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
