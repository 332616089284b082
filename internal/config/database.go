package config

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type MongoDBConfig struct {
	URI      string
	Database string
}

func NewMongoDBConfig(log *zap.Logger) *MongoDBConfig {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI not set")
	}
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "school_site"
	}
	return &MongoDBConfig{URI: uri, Database: name}
}

func NewMongoDatabase(lc fx.Lifecycle, cfg *MongoDBConfig, log *zap.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Info("connected to MongoDB", zap.String("database", cfg.Database))

	db := client.Database(cfg.Database)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return ensureUserIndexes(ctx, db)
		},
		OnStop: func(ctx context.Context) error {
			log.Info("closing MongoDB connection")
			return client.Disconnect(ctx)
		},
	})
	return db, nil
}

// ensureUserIndexes creates the unique index backing email uniqueness.
// Duplicate registrations surface as a driver duplicate-key error.
func ensureUserIndexes(ctx context.Context, db *mongo.Database) error {
	model := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := db.Collection("users").Indexes().CreateOne(ctx, model)
	return err
}
