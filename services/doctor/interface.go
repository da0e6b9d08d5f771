package doctor

import (
	"context"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"
)

// DoctorService manages doctor records and their schedule configuration.
type DoctorService interface {
	Create(ctx context.Context, doc *models.Doctor) (*models.Doctor, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	List(ctx context.Context, specialty string, activeOnly bool) ([]models.Doctor, error)
	Update(ctx context.Context, id string, update map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	UpdateSchedule(ctx context.Context, id string, schedule models.ScheduleConfig) error
	AddBlockedDate(ctx context.Context, id, date string) error
	RemoveBlockedDate(ctx context.Context, id, date string) error
}

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo  doctorRepo.DoctorRepository
	Cache utils.Cache
}
