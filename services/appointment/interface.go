package appointment

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	patientRepo "medibook/database/repository/patient"
	"medibook/models"
	"medibook/utils"
)

// AppointmentService defines the booking workflow: availability lookup,
// slot booking, and status transitions.
type AppointmentService interface {
	GetAvailability(ctx context.Context, doctorID, date string) (*models.DayAvailability, error)
	Book(ctx context.Context, req models.BookAppointmentRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) error
	Confirm(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListForDate(ctx context.Context, date string) ([]models.Appointment, error)
}

// TaskEnqueuer matches the asynq client surface the service needs; tests
// substitute a recorder.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	DoctorRepo      doctorRepo.DoctorRepository
	PatientRepo     patientRepo.PatientRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Cache           utils.Cache
	QueueClient     TaskEnqueuer

	// Clock is used for "today" past-slot filtering; tests override it.
	Clock func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
