package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, uri, name string) (*DB, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, err
	}
	return &DB{client: cli, db: cli.Database(name)}, nil
}

func (d *DB) Collection(name string) *mongo.Collection { return d.db.Collection(name) }

func (d *DB) Close(ctx context.Context) error { return d.client.Disconnect(ctx) }
