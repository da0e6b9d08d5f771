// File: database/repository/doctor/schedule.go
package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/models"
)

func (r *mongoDoctorRepo) UpdateSchedule(ctx context.Context, id string, schedule models.ScheduleConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"schedule":  schedule,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update schedule for doctor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddBlockedDate appends a canonical "YYYY-MM-DD" entry. New entries are
// always written in string form; only historical data carries the other
// representations.
func (r *mongoDoctorRepo) AddBlockedDate(ctx context.Context, id string, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$addToSet": bson.M{"schedule.blockedDates": date},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to add blocked date for doctor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RemoveBlockedDate pulls every stored representation of the given date:
// the plain string form and the {date: "..."} wrapper form.
func (r *mongoDoctorRepo) RemoveBlockedDate(ctx context.Context, id string, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$pull": bson.M{"schedule.blockedDates": bson.M{"$in": []interface{}{
			date,
			bson.M{"date": date},
		}}},
		"$set": bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to remove blocked date for doctor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
