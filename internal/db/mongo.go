package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"atlas-ads/internal/config/configs"
)

// NewMongoDatabase connects to MongoDB and returns the configured
// database together with a disconnect function. Connectivity is
// verified with a primary-preferred ping before returning.
func NewMongoDatabase(ctx context.Context, cfg configs.Mongo) (*mongo.Database, func(), error) {
	clientOptions := options.Client().ApplyURI(cfg.URI).
		SetMaxPoolSize(10).
		SetMinPoolSize(2).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true)

	ctxConn, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctxConn, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err = client.Ping(ctxConn, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctxConn)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	disconnect := func() {
		ctxDisc, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctxDisc)
	}
	return client.Database(cfg.Database), disconnect, nil
}
