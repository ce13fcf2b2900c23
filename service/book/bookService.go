package booksvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo interface {
	List(ctx context.Context) ([]bson.M, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Create(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	ReplaceFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error)
}

type Service interface {
	List(ctx context.Context) ([]bson.M, error)
	Detail(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Create(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	Replace(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)

	// IncrementQuantity is the return-side half of the loan workflow. It is
	// deliberately independent of deleting the loan entry; callers may invoke
	// the two in either order.
	IncrementQuantity(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]bson.M, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return s.r.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	return s.r.Create(ctx, doc)
}

func (s *service) Replace(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	return s.r.ReplaceFields(ctx, id, fields)
}

func (s *service) IncrementQuantity(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return s.r.AdjustQuantity(ctx, id, 1)
}
