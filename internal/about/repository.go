package about

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item About) error
	Get(ctx context.Context, id string) (About, error)
	Update(ctx context.Context, id string, set bson.M) (About, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]About, error)
	First(ctx context.Context) (About, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item About) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Get(ctx context.Context, id string) (About, error) {
	var item About
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return About{}, err
	}
	item.normalize()
	return item, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (About, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated About
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return About{}, err
	}
	updated.normalize()
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]About, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]About, 0)
	for cursor.Next(ctx) {
		var item About
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		item.normalize()
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// First returns the oldest profile document; see header.Repository.First for
// why oldest-wins.
func (r *MongoRepository) First(ctx context.Context) (About, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	var item About
	if err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&item); err != nil {
		return About{}, err
	}
	item.normalize()
	return item, nil
}
