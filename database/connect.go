package database

import (
	"context"
	"log"
	"time"

	"napoli_backend/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

const opTimeout = 10 * time.Second

// ConnectDB opens the process-wide database handle, shared by every
// handler. A missing DATABASE_URL leaves DB nil; that is a valid checked
// state and never crashes the process.
func ConnectDB() {
	uri := config.Config("DATABASE_URL")
	if uri == "" {
		log.Println("DATABASE_URL not set, running without a database")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("failed to connect database:", err)
		return
	}

	Client = client
	DB = client.Database(config.ConfigDefault("DATABASE_NAME", "napoli"))
	log.Println("Connection Opened to Database")
}
