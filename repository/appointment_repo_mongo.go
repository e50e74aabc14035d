package repository

import (
	"context"
	"time"

	"github.com/shubhampawale7/Acharya-Beena/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAppointmentRepo struct {
	DB *mongo.Client
}

func NewMongoAppointmentRepo(db *mongo.Client) *MongoAppointmentRepo {
	return &MongoAppointmentRepo{DB: db}
}

func (r *MongoAppointmentRepo) appointments() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("appointments")
}

func (r *MongoAppointmentRepo) CreateAppointment(a *models.Appointment) error {
	ctx := context.Background()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.appointments().InsertOne(ctx, a)
	return err
}

func (r *MongoAppointmentRepo) GetAppointmentByID(id string) (*models.Appointment, error) {
	ctx := context.Background()
	a := &models.Appointment{}

	err := r.appointments().FindOne(ctx, bson.M{"_id": id}).Decode(a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	if err := r.populateOwners(ctx, []*models.Appointment{a}); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *MongoAppointmentRepo) GetAppointmentsByUser(userID string) ([]*models.Appointment, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "appointment_date", Value: -1}})

	cur, err := r.appointments().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeAppointments(ctx, cur)
}

func (r *MongoAppointmentRepo) GetAllAppointments() ([]*models.Appointment, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "appointment_date", Value: -1}})

	cur, err := r.appointments().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list, err := decodeAppointments(ctx, cur)
	if err != nil {
		return nil, err
	}
	if err := r.populateOwners(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateAppointment replaces the stored document, save-semantics style.
func (r *MongoAppointmentRepo) UpdateAppointment(a *models.Appointment) error {
	ctx := context.Background()
	now := time.Now().UTC()
	a.UpdatedAt = &now

	_, err := r.appointments().ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	return err
}

func (r *MongoAppointmentRepo) CountAppointments() (int64, error) {
	return r.appointments().CountDocuments(context.Background(), bson.M{})
}

func (r *MongoAppointmentRepo) RevenueTotal() (float64, error) {
	ctx := context.Background()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status": bson.M{"$in": bson.A{models.StatusConfirmed, models.StatusCompleted}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$service_price"},
		}}},
	}

	cur, err := r.appointments().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return 0, err
		}
	}
	return result.Total, cur.Err()
}

func (r *MongoAppointmentRepo) RecentAppointments(limit int) ([]*models.Appointment, error) {
	ctx := context.Background()
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.appointments().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list, err := decodeAppointments(ctx, cur)
	if err != nil {
		return nil, err
	}
	if err := r.populateOwners(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func decodeAppointments(ctx context.Context, cur *mongo.Cursor) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for cur.Next(ctx) {
		a := &models.Appointment{}
		if err := cur.Decode(a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

// populateOwners attaches sanitized owner records in one batched lookup.
// Orphaned bookings (owner deleted) keep a nil User.
func (r *MongoAppointmentRepo) populateOwners(ctx context.Context, list []*models.Appointment) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]string, 0, len(list))
	seen := make(map[string]bool)
	for _, a := range list {
		if !seen[a.UserID] {
			seen[a.UserID] = true
			ids = append(ids, a.UserID)
		}
	}

	cur, err := r.DB.Database(mongoDatabase).Collection("users").
		Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	byID := make(map[string]*models.User)
	for cur.Next(ctx) {
		u := &models.User{}
		if err := cur.Decode(u); err != nil {
			return err
		}
		byID[u.ID] = u.Sanitize()
	}
	if err := cur.Err(); err != nil {
		return err
	}

	for _, a := range list {
		a.User = byID[a.UserID]
	}
	return nil
}
