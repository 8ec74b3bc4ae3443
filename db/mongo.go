package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"internship-alert/internal/logger"
	"internship-alert/config"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
// It is a no-op when mongo.uri is empty: the archive stays disabled and all
// records live in memory only.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := cfg.Mongo.URI
		if uri == "" {
			return
		}
		dbName := cfg.Mongo.DBName
		if dbName == "" {
			dbName = "internship_alert"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		// Ensure indexes for all collections
		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

// Enabled reports whether the archive is active.
func Enabled() bool { return db != nil }

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Ping verifies the connection is still alive.
func Ping(ctx context.Context) error {
	if db == nil {
		return mongo.ErrClientDisconnected
	}
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// internships: created_at desc for the newest view, platform and
	// is_saved for filtered listings
	{
		if _, err := d.Collection("internships").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("internships").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "platform", Value: 1}},
			Options: options.Index().SetName("idx_platform"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("internships").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "is_saved", Value: 1}},
			Options: options.Index().SetName("idx_is_saved"),
		}); err != nil {
			return err
		}
	}

	// ai_logs: requested_at desc
	{
		if _, err := d.Collection("ai_logs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "requested_at", Value: -1}},
			Options: options.Index().SetName("idx_requested_at_desc"),
		}); err != nil {
			return err
		}
	}

	return nil
}
