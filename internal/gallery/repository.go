package gallery

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("media not found")

type GalleryRepository struct {
	collection *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{collection: db.Collection("gallery")}
}

func (r *GalleryRepository) Create(ctx context.Context, m *Media) error {
	_, err := r.collection.InsertOne(ctx, m)
	return err
}

func (r *GalleryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Media, error) {
	var m Media
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindAllSorted returns every media item, newest-first by date.
func (r *GalleryRepository) FindAllSorted(ctx context.Context) ([]Media, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, err
	}
	var items []Media
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GalleryRepository) Update(ctx context.Context, m *Media) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
