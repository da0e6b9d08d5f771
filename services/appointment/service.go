package appointment

import (
	"context"
	"fmt"

	"medibook/models"
)

func (s *DefaultAppointmentService) setStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	appt, err := s.AppointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment %s not found: %w", id, err)
	}
	if err := s.AppointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appt.Status = status
	// Status changes can free or pin a slot either way; drop the cached day.
	s.InvalidateAvailability(ctx, appt.DoctorID, appt.Date)
	return appt, nil
}

// Cancel frees the appointment's slot.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id string) error {
	_, err := s.setStatus(ctx, id, models.AppointmentCancelled)
	return err
}

// Confirm marks a pending appointment as confirmed by the doctor and
// schedules its reminder.
func (s *DefaultAppointmentService) Confirm(ctx context.Context, id string) error {
	appt, err := s.setStatus(ctx, id, models.AppointmentConfirmed)
	if err != nil {
		return err
	}
	s.scheduleReminder(appt)
	return nil
}

// Complete marks the consultation as done.
func (s *DefaultAppointmentService) Complete(ctx context.Context, id string) error {
	_, err := s.setStatus(ctx, id, models.AppointmentCompleted)
	return err
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return s.AppointmentRepo.GetByID(ctx, id)
}

func (s *DefaultAppointmentService) ListForDoctor(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return s.AppointmentRepo.GetByDoctorAndDate(ctx, doctorID, date)
}

func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.AppointmentRepo.GetByPatient(ctx, patientID)
}

func (s *DefaultAppointmentService) ListForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return s.AppointmentRepo.GetByDate(ctx, date)
}
