package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var client *mongo.Client

const defaultPingTimeout = 5 * time.Second

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to open mongo connection: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), defaultPingTimeout)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"ping_timeout": defaultPingTimeout,
	}).Info("Connected to MongoDB successfully")

	return nil
}

// Database returns a handle for the named database on the shared client.
func Database(name string) *mongo.Database {
	return client.Database(name)
}

// Ping verifies the connection is still healthy.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("mongo connection not established")
	}
	return client.Ping(ctx, readpref.Primary())
}

func Close() {
	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), defaultPingTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logrus.Warnf("Error disconnecting from MongoDB: %v", err)
			return
		}
		logrus.Info("MongoDB connection closed")
	}
}
