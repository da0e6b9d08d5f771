// FILE: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

// ErrSlotConflict is returned when an insert collides with the unique
// doctor/date/time index, i.e. another booking for the same slot landed
// between the caller's availability check and its insert.
var ErrSlotConflict = errors.New("appointment slot already taken")

// EnsureIndexes creates the necessary indexes on the appointments collection.
// The partial unique index on doctorId+date+time is the persistence-layer
// backstop against concurrent double-booking: the availability computation
// works on a snapshot, so two clients can both see a slot as free.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	occupying := bson.M{"status": bson.M{"$nin": bson.A{
		models.AppointmentCancelled,
		models.AppointmentDeclined,
	}}}

	indexModels := []mongo.IndexModel{
		// Unique index on Appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One occupying booking per doctor/date/slot
		{
			Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(occupying).
				SetName("unique_doctor_slot"),
		},
		// Patient history (primary patient query pattern)
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("patient_date_idx"),
		},
		// Reception day view
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("date_time_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
