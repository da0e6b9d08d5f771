package admission

import (
	"context"
	"fmt"

	"medibook/models"
)

func (s *DefaultAdmissionService) Admit(ctx context.Context, req models.AdmitPatientRequest) (*models.Admission, error) {
	if _, err := s.PatientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, fmt.Errorf("patient %s not found: %w", req.PatientID, err)
	}
	if _, err := s.DoctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		return nil, fmt.Errorf("doctor %s not found: %w", req.DoctorID, err)
	}

	admission := &models.Admission{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Ward:      req.Ward,
		Bed:       req.Bed,
		Notes:     req.Notes,
	}
	if err := s.Repo.Create(ctx, admission); err != nil {
		return nil, err
	}
	return admission, nil
}

func (s *DefaultAdmissionService) Discharge(ctx context.Context, id string) error {
	return s.Repo.Discharge(ctx, id)
}

func (s *DefaultAdmissionService) GetByID(ctx context.Context, id string) (*models.Admission, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultAdmissionService) List(ctx context.Context, status string) ([]models.Admission, error) {
	return s.Repo.List(ctx, status)
}
