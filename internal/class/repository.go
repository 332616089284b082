package class

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound   = errors.New("class not found")
	ErrNameExists = errors.New("class with this name already exists")
)

type ClassRepository struct {
	collection *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{collection: db.Collection("classes")}
}

func (r *ClassRepository) Create(ctx context.Context, cls *Class) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"name": cls.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrNameExists
	}
	_, err = r.collection.InsertOne(ctx, cls)
	return err
}

func (r *ClassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Class, error) {
	var cls Class
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cls)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cls, nil
}

func (r *ClassRepository) FindAll(ctx context.Context, activeOnly bool) ([]Class, error) {
	filter := bson.M{}
	if activeOnly {
		filter["status"] = StatusActive
	}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	var classes []Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) Update(ctx context.Context, cls *Class) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": cls.ID}, cls)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClassRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClassRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
