// File: database/repository/admission/crud.go
package admissionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

func (r *mongoAdmissionRepo) Create(ctx context.Context, admission *models.Admission) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if admission.ID == "" {
		admission.ID = uuid.New().String()
	}
	admission.Status = models.AdmissionActive
	admission.AdmittedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, admission); err != nil {
		return fmt.Errorf("failed to insert admission: %w", err)
	}
	return nil
}

func (r *mongoAdmissionRepo) GetByID(ctx context.Context, id string) (*models.Admission, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admission models.Admission
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admission); err != nil {
		return nil, err
	}
	return &admission, nil
}

func (r *mongoAdmissionRepo) List(ctx context.Context, status string) ([]models.Admission, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "admittedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list admissions: %w", err)
	}
	defer cursor.Close(ctx)

	var admissions []models.Admission
	if err := cursor.All(ctx, &admissions); err != nil {
		return nil, fmt.Errorf("failed to decode admissions: %w", err)
	}
	return admissions, nil
}

func (r *mongoAdmissionRepo) Discharge(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.AdmissionActive},
		bson.M{"$set": bson.M{
			"status":       models.AdmissionDischarged,
			"dischargedAt": now,
		}})
	if err != nil {
		return fmt.Errorf("failed to discharge admission %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the admissions collection.
func (r *mongoAdmissionRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "admittedAt", Value: -1}},
			Options: options.Index().SetName("status_admitted_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create admission indexes: %w", err)
	}
	return nil
}
