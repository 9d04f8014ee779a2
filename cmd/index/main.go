package main

import (
	"context"
	"log"
	"time"

	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/repository"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, idx := range repository.Indexes {
		name, err := repository.CreateIndex(ctx, mongoDB.Database, idx)
		if err != nil {
			log.Printf("Warning: Failed to create index on %s: %v", idx.Collection, err)
			continue
		}
		log.Printf("Created index %s on %s", name, idx.Collection)
	}

	log.Println("Migration completed successfully!")
}
