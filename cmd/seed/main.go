package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"fitlife-blog/internal/config"
	"fitlife-blog/internal/seed"
	"fitlife-blog/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if err := checkDriver(cfg.StoreDriver); err != nil {
		logger.Fatal(err)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer store.Close()

	n, err := seed.Reset(ctx, store, store.Articles)
	if err != nil {
		logger.Fatalf("seed %s store: %v", store.Driver, err)
	}
	logger.Printf("seeded %d articles", n)
}

// checkDriver rejects stores whose data would not outlive the command.
func checkDriver(driver string) error {
	if driver == config.DriverMemory {
		return fmt.Errorf("seed needs a persistent store, got %s", driver)
	}
	return nil
}
