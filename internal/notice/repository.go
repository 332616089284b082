package notice

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("notice not found")

type Repository interface {
	Create(ctx context.Context, n *Notice) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Notice, error)
	// FindAllSorted returns every notice, newest-first by date.
	FindAllSorted(ctx context.Context) ([]Notice, error)
	Update(ctx context.Context, n *Notice) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AddReceipt appends a receipt unless one already exists for the
	// user; the $ne filter keeps the append idempotent under races.
	AddReceipt(ctx context.Context, noticeID, userID primitive.ObjectID, at time.Time) error
	RemoveReceipt(ctx context.Context, noticeID, userID primitive.ObjectID) error
	// AddReceiptToAll appends a receipt to every notice the user has
	// not read and returns how many notices were touched.
	AddReceiptToAll(ctx context.Context, userID primitive.ObjectID, at time.Time) (int64, error)
}

type NoticeRepository struct {
	collection *mongo.Collection
}

func NewNoticeRepository(db *mongo.Database) *NoticeRepository {
	return &NoticeRepository{collection: db.Collection("notices")}
}

func (r *NoticeRepository) Create(ctx context.Context, n *Notice) error {
	_, err := r.collection.InsertOne(ctx, n)
	return err
}

func (r *NoticeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Notice, error) {
	var n Notice
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NoticeRepository) FindAllSorted(ctx context.Context) ([]Notice, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, err
	}
	var notices []Notice
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *NoticeRepository) Update(ctx context.Context, n *Notice) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": n.ID}, n)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NoticeRepository) AddReceipt(ctx context.Context, noticeID, userID primitive.ObjectID, at time.Time) error {
	filter := bson.M{"_id": noticeID, "read_by.user": bson.M{"$ne": userID}}
	update := bson.M{"$push": bson.M{"read_by": ReadReceipt{User: userID, ReadAt: at}}}
	// MatchedCount of zero means either the notice is gone or the user
	// already has a receipt; callers check existence separately.
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

func (r *NoticeRepository) RemoveReceipt(ctx context.Context, noticeID, userID primitive.ObjectID) error {
	update := bson.M{"$pull": bson.M{"read_by": bson.M{"user": userID}}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": noticeID}, update)
	return err
}

func (r *NoticeRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *NoticeRepository) AddReceiptToAll(ctx context.Context, userID primitive.ObjectID, at time.Time) (int64, error) {
	filter := bson.M{"read_by.user": bson.M{"$ne": userID}}
	update := bson.M{"$push": bson.M{"read_by": ReadReceipt{User: userID, ReadAt: at}}}
	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
