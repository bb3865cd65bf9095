package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection         *mongo.Collection
	EventsCollection       *mongo.Collection
	CertificatesCollection *mongo.Collection
	MovementsCollection    *mongo.Collection
	SettingsCollection     *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("congresodb").Collection("users")
	EventsCollection = Client.Database("congresodb").Collection("events")
	CertificatesCollection = Client.Database("congresodb").Collection("certificates")
	MovementsCollection = Client.Database("congresodb").Collection("movements")
	SettingsCollection = Client.Database("congresodb").Collection("settings")
}
