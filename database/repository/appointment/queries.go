// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// GetByDoctorAndDate returns every appointment booked against the doctor on
// the date, regardless of status; the availability computation decides which
// statuses occupy their slot.
func (r *mongoAppointmentRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID, "date": date})
}

func (r *mongoAppointmentRepo) GetByPatientDoctorDate(ctx context.Context, patientID, doctorID, date string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"patientId": patientID, "doctorId": doctorID, "date": date})
}

func (r *mongoAppointmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

// GetByDate lists all appointments for a day, for the reception desk view.
func (r *mongoAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"date": date})
}
