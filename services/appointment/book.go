package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"medibook/config"
	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/services/tasks"
	"medibook/utils"
)

// Book validates the requested slot against a fresh availability computation
// and inserts the appointment. The availability check works on a snapshot;
// the unique doctor/date/time index catches the race where another booking
// lands in between.
func (s *DefaultAppointmentService) Book(ctx context.Context, req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	doctor, err := s.DoctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("doctor %s not found: %w", req.DoctorID, err)
	}
	if !doctor.Active {
		return nil, NewBookingError(CodeDoctorInactive, "doctor is not accepting appointments")
	}
	if _, err := s.PatientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, fmt.Errorf("patient %s not found: %w", req.PatientID, err)
	}

	if scheduling.IsDateBlocked(doctor.Schedule, req.Date) {
		return nil, NewBookingError(CodeDateBlocked, "doctor is unavailable on "+req.Date)
	}
	if scheduling.IsSlotInPast(req.Time, req.Date, s.now()) {
		return nil, NewBookingError(CodeSlotInPast, "slot "+req.Time+" has already started")
	}

	booked, err := s.AppointmentRepo.GetByDoctorAndDate(ctx, req.DoctorID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	if !slotOffered(scheduling.AvailableSlots(doctor.Schedule, req.DoctorID, req.Date, booked), req.Time) {
		// Distinguish "taken" from "never published" for the booking screen.
		for _, a := range booked {
			if a.Time == req.Time && a.Occupies() {
				return nil, NewBookingError(CodeSlotTaken, "slot "+req.Time+" is already booked")
			}
		}
		return nil, NewBookingError(CodeSlotNotOffered, "slot "+req.Time+" is not offered on "+req.Date)
	}

	// One appointment per patient per doctor per day.
	sameDay, err := s.AppointmentRepo.GetByPatientDoctorDate(ctx, req.PatientID, req.DoctorID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient bookings: %w", err)
	}
	for _, a := range sameDay {
		if a.Occupies() {
			return nil, NewBookingError(CodeAlreadyBooked, "patient already has an appointment with this doctor on "+req.Date)
		}
	}

	appt := &models.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		BookedBy:  req.BookedBy,
		Status:    models.AppointmentPending,
	}
	if req.BookedBy == "receptionist" {
		appt.Status = models.AppointmentConfirmed
	}

	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotConflict) {
			return nil, NewBookingError(CodeSlotTaken, "slot "+req.Time+" is already booked")
		}
		return nil, err
	}

	s.InvalidateAvailability(ctx, req.DoctorID, req.Date)
	// Reminders accompany confirmed appointments only; a pending self-booking
	// gets its reminder when the doctor confirms it.
	if appt.Status == models.AppointmentConfirmed {
		s.scheduleReminder(appt)
	}

	logger.Info("Appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	return appt, nil
}

func slotOffered(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// scheduleReminder enqueues the reminder task ahead of the slot start.
// Failures are logged, not surfaced: booking must not fail because the
// reminder queue is down.
func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment) {
	if s.QueueClient == nil {
		return
	}
	logger := utils.GetLogger()

	startAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		logger.Warn("Skipping reminder for unparseable slot",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(s.now()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{
		AppointmentID: appt.ID,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Date:          appt.Date,
		Time:          appt.Time,
	}, fireAt)
	if err != nil {
		logger.Warn("Failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.QueueClient.Enqueue(task, opts...); err != nil {
		logger.Warn("Failed to enqueue reminder task",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
