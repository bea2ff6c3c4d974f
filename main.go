package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"shoplist/config"
	"shoplist/controllers"
	"shoplist/routes"
	"shoplist/storage"
)

func main() {
	logger := log.New(os.Stdout, "[shoplist] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatalf("Failed to open item store: %v", err)
	}
	defer store.Close()
	logger.Printf("Item store ready at %s", cfg.DatabasePath)

	var repo storage.Repository = store
	if cfg.CacheEnabled() {
		client := cfg.NewRedisClient()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		logger.Println("Connected to Redis!")
		repo = storage.NewCachedRepository(repo, client, cfg.CacheTTL, logger)
	}

	c := controllers.NewItemController(repo, logger)
	r := routes.SetupRoutes(c)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Printf("Listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
