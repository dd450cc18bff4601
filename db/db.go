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
	StudentsCollection      *mongo.Collection
	HostsCollection         *mongo.Collection
	AdminsCollection        *mongo.Collection
	EventsCollection        *mongo.Collection
	GroupsCollection        *mongo.Collection
	GroupMembersCollection  *mongo.Collection
	StudentGroupsCollection *mongo.Collection
	RegistrationsCollection *mongo.Collection
	ReceiptsCollection      *mongo.Collection
	Client                  *mongo.Client
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
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	StudentsCollection = Client.Database("campusdb").Collection("students")
	HostsCollection = Client.Database("campusdb").Collection("hosts")
	AdminsCollection = Client.Database("campusdb").Collection("admins")
	EventsCollection = Client.Database("campusdb").Collection("events")
	GroupsCollection = Client.Database("campusdb").Collection("groups")
	GroupMembersCollection = Client.Database("campusdb").Collection("groupmembers")
	StudentGroupsCollection = Client.Database("campusdb").Collection("studentgroups")
	RegistrationsCollection = Client.Database("campusdb").Collection("registrations")
	ReceiptsCollection = Client.Database("campusdb").Collection("receipts")
}
