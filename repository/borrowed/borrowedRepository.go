// repository/borrowed/repo.go
package borrowedrepo

import (
	"context"
	"errors"

	"github.com/AbuBokorSiddik67/Library-Management-Server/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("borrowed book entry not found")

type Repo interface {
	FindByUser(ctx context.Context, userEmail string) ([]bson.M, error)
	FindByUserAndBook(ctx context.Context, userEmail, bookID string) (bson.M, error)
	Create(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type repo struct{ col *mongo.Collection }

func New(col *mongo.Collection) Repo { return &repo{col} }

func (r *repo) FindByUser(ctx context.Context, userEmail string) ([]bson.M, error) {
	cur, err := r.col.Find(ctx, bson.M{model.FieldUserEmail: userEmail})
	if err != nil {
		return nil, err
	}
	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) FindByUserAndBook(ctx context.Context, userEmail, bookID string) (bson.M, error) {
	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{
		model.FieldUserEmail: userEmail,
		model.FieldBookID:    bookID,
	}).Decode(&doc)
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

func (r *repo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
