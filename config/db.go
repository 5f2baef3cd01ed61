package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

func ConnectDB() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "muathaqa"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	database = client.Database(dbName)
	log.Printf("Connected to MongoDB database %q", dbName)

	ensureIndexes(ctx)
}

func GetCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

// ensureIndexes creates the unique index on propertyCode. The code generator
// scans existing codes before inserting, but the scan-then-insert is not
// atomic; the unique index is the backstop that turns a race into a
// duplicate-key error instead of a silent overwrite.
func ensureIndexes(ctx context.Context) {
	properties := PropertiesCollectionName()
	_, err := database.Collection(properties).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "propertyCode", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create propertyCode index: %v", err)
	}

	admins := AdminsCollectionName()
	_, err = database.Collection(admins).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create admin email index: %v", err)
	}
}

func PropertiesCollectionName() string {
	if name := os.Getenv("MONGODB_COLLECTION_PROPERTIES"); name != "" {
		return name
	}
	return "properties"
}

func AdminsCollectionName() string {
	if name := os.Getenv("MONGODB_COLLECTION_ADMINS"); name != "" {
		return name
	}
	return "admins"
}

func InquiriesCollectionName() string {
	if name := os.Getenv("MONGODB_COLLECTION_INQUIRIES"); name != "" {
		return name
	}
	return "inquiries"
}
