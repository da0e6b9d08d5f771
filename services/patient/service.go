package patient

import (
	"context"
	"fmt"

	"medibook/models"
)

func (s *DefaultPatientService) Register(ctx context.Context, p *models.Patient) (*models.Patient, error) {
	if p.Name == "" || p.Phone == "" {
		return nil, fmt.Errorf("patient name and phone are required")
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPatientService) GetByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	return s.Repo.GetByPhone(ctx, phone)
}

func (s *DefaultPatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultPatientService) Update(ctx context.Context, id string, update map[string]interface{}) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *DefaultPatientService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
