package teacher

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("teacher not found")

type TeacherRepository struct {
	collection *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{collection: db.Collection("teachers")}
}

func (r *TeacherRepository) Create(ctx context.Context, t *Teacher) error {
	_, err := r.collection.InsertOne(ctx, t)
	return err
}

func (r *TeacherRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Teacher, error) {
	var t Teacher
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) FindAll(ctx context.Context) ([]Teacher, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	var teachers []Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *TeacherRepository) Update(ctx context.Context, t *Teacher) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
