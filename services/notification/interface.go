package notification

import (
	"context"

	"go.uber.org/zap"

	"medibook/models"
	"medibook/utils"
)

// NotificationService delivers appointment reminders to patients. Delivery
// transport (SMS, push) is pluggable; the scheduling side only depends on
// this interface.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService records reminders to the application log. It is the
// default implementation when no delivery channel is configured.
type LogNotificationService struct{}

func (s *LogNotificationService) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	logger := utils.GetLogger()
	logger.Info("Appointment reminder due",
		zap.String("appointmentId", payload.AppointmentID),
		zap.String("patientId", payload.PatientID),
		zap.String("doctorId", payload.DoctorID),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time),
	)
	return nil
}
