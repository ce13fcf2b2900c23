package bookrepo

import (
	"context"
	"errors"

	"github.com/AbuBokorSiddik67/Library-Management-Server/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("book not found")

type Repo interface {
	List(ctx context.Context) ([]bson.M, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Create(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	ReplaceFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error)
}

type repo struct{ col *mongo.Collection }

func New(col *mongo.Collection) Repo { return &repo{col} }

func (r *repo) List(ctx context.Context) ([]bson.M, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *repo) Create(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, doc)
}

// ReplaceFields upserts: when no document matches id the store creates a new
// one under its own generated id, so callers must not assume id survives.
func (r *repo) ReplaceFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	return r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
}

// AdjustQuantity applies the delta as a single field-level $inc, so concurrent
// borrow/return traffic cannot lose updates. There is no floor: the counter
// can go negative.
func (r *repo) AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{model.FieldQuantity: delta}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return res, nil
}
