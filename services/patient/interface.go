package patient

import (
	"context"

	patientRepo "medibook/database/repository/patient"
	"medibook/models"
)

// PatientService manages patient records.
type PatientService interface {
	Register(ctx context.Context, p *models.Patient) (*models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByPhone(ctx context.Context, phone string) (*models.Patient, error)
	List(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, id string, update map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// DefaultPatientService implements PatientService.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}
