package admission

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("admission not found")

type AdmissionRepository struct {
	collection *mongo.Collection
}

func NewAdmissionRepository(db *mongo.Database) *AdmissionRepository {
	return &AdmissionRepository{collection: db.Collection("admissions")}
}

func (r *AdmissionRepository) Create(ctx context.Context, a *Admission) error {
	_, err := r.collection.InsertOne(ctx, a)
	return err
}

func (r *AdmissionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Admission, error) {
	var a Admission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AdmissionRepository) FindAll(ctx context.Context) ([]Admission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	var admissions []Admission
	if err := cursor.All(ctx, &admissions); err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *AdmissionRepository) Update(ctx context.Context, a *Admission) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AdmissionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
