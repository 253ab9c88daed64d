package mongo

import (
	"context"
	"fmt"
	"time"

	"directory-service/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

// Connect creates the process-wide mongo client. Called once at startup;
// repositories share the handle for the process lifetime.
func Connect(config utils.MongoConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(buildURI(config))
	c, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}
	client = c
	database = c.Database(config.DB)
	zap.L().Info("connected to mongo", zap.String("host", config.Host), zap.String("db", config.DB))
	return nil
}

// Disconnect tears the shared client down on shutdown.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	client = nil
	database = nil
	return err
}

func IsConnected() bool {
	return database != nil
}

func GetReadCollection(collection string) *mongo.Collection {
	return database.Collection(collection)
}

func GetWriteCollection(collection string) *mongo.Collection {
	return database.Collection(collection)
}

func buildURI(config utils.MongoConfig) string {
	credentials := ""
	if config.User != "" && config.Password != "" {
		credentials = fmt.Sprintf("%s:%s@", config.User, config.Password)
	}
	uri := fmt.Sprintf("mongodb://%s%s:%s", credentials, config.Host, config.Port)
	if config.ReplicaSet != "" {
		uri += "/?replicaSet=" + config.ReplicaSet
	}
	return uri
}
