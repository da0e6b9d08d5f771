package admission

import (
	"context"

	admissionRepo "medibook/database/repository/admission"
	doctorRepo "medibook/database/repository/doctor"
	patientRepo "medibook/database/repository/patient"
	"medibook/models"
)

// AdmissionService handles the reception-desk inpatient workflow.
type AdmissionService interface {
	Admit(ctx context.Context, req models.AdmitPatientRequest) (*models.Admission, error)
	Discharge(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Admission, error)
	List(ctx context.Context, status string) ([]models.Admission, error)
}

// DefaultAdmissionService implements AdmissionService.
type DefaultAdmissionService struct {
	Repo        admissionRepo.AdmissionRepository
	DoctorRepo  doctorRepo.DoctorRepository
	PatientRepo patientRepo.PatientRepository
}
