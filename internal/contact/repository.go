package contact

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item Message) error
	Get(ctx context.Context, id string) (Message, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]Message, error)
	Count(ctx context.Context, filter AdminListFilter) (int64, error)
	MarkRead(ctx context.Context, id string, readAt time.Time) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item Message) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Get(ctx context.Context, id string) (Message, error) {
	var item Message
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return Message{}, err
	}
	return item, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]Message, error) {
	query := bson.M{}
	if filter.Unread {
		query["read"] = bson.M{"$ne": true}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Message, 0)
	for cursor.Next(ctx) {
		var item Message
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter AdminListFilter) (int64, error) {
	query := bson.M{}
	if filter.Unread {
		query["read"] = bson.M{"$ne": true}
	}
	return r.col.CountDocuments(ctx, query)
}

// MarkRead flips read on an unread message. Returns whether the document
// exists; an already-read message reports true without touching readAt, which
// keeps the operation idempotent.
func (r *MongoRepository) MarkRead(ctx context.Context, id string, readAt time.Time) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "read": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"read": true, "readAt": readAt}},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	count, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
