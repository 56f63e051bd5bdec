package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

// ConnectDB connects to MongoDB and sets the global Client and DB variables.
// Email uniqueness is enforced with a unique index on users.email, so a
// duplicate signup surfaces as a write error instead of relying on a
// racy find-then-insert check.
func ConnectDB(uri, dbName string) {
	if uri == "" {
		log.Fatal("MONGO_URI not set in env")
	}
	if dbName == "" {
		log.Fatal("MONGO_DB not set in env")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("mongo.Connect error: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo.Ping error: %v", err)
	}

	Client = client
	DB = client.Database(dbName)

	_, err = DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("failed to create unique email index: %v", err)
	}

	log.Println("Connected to MongoDB:", dbName)
}
