package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique indexes the domain relies on. Uniqueness
// under concurrent writes is enforced here, by the store, not by application
// locking: the losing insert of a race gets a duplicate-key error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := []struct {
		collection string
		field      string
		sparse     bool
	}{
		{usersCollection, "username", false},
		// Email is optional at registration; sparse keeps absent values out
		// of the uniqueness check.
		{usersCollection, "email", true},
		{departmentsCollection, "name", false},
		{jobRolesCollection, "title", false},
		{employeesCollection, "email", false},
	}

	for _, spec := range specs {
		opts := options.Index().SetUnique(true)
		if spec.sparse {
			opts = opts.SetSparse(true)
		}
		_, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: spec.field, Value: 1}},
			Options: opts,
		})
		if err != nil {
			return fmt.Errorf("create unique index %s.%s: %w", spec.collection, spec.field, err)
		}
	}
	return nil
}
