package repository

import (
	"context"
	"time"

	"github.com/shubhampawale7/Acharya-Beena/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "acharya_beena"

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("users")
}

// EnsureIndexes creates the unique email index, keeping this backend in
// step with the UNIQUE constraint in the Postgres schema.
func (r *MongoUserRepo) EnsureIndexes() error {
	_, err := r.users().Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	_, err := r.users().InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.users().FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetUserByID(id string) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) UpdateUser(user *models.User) error {
	ctx := context.Background()
	update := bson.M{"$set": bson.M{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.Password,
		"role":     user.Role,
	}}
	_, err := r.users().UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	return err
}

func (r *MongoUserRepo) DeleteUser(id string) error {
	ctx := context.Background()
	_, err := r.users().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoUserRepo) GetAllUsers() ([]*models.User, error) {
	ctx := context.Background()

	cur, err := r.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.User
	for cur.Next(ctx) {
		u := &models.User{}
		if err := cur.Decode(u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}

func (r *MongoUserRepo) CountUsers() (int64, error) {
	return r.users().CountDocuments(context.Background(), bson.M{})
}
