package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"tubtime/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindActiveByDate returns the pending and confirmed appointments on a date.
// This is the candidate set the slot checker scans.
func (repo *MongoAppointmentRepo) FindActiveByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"requested_date": date,
		"status":         bson.M{"$in": []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}},
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments for %s: %w", date, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments for %s: %w", date, err)
	}
	return appts, nil
}

// List returns appointments matching the filter, newest first.
func (repo *MongoAppointmentRepo) List(ctx context.Context, f Filter) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Date != "" {
		filter["requested_date"] = f.Date
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
