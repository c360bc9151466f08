package main

import (
	"context"
	"flag"
	"log"
	"os"

	"fitlife-blog/internal/config"
	"fitlife-blog/internal/db"
	"fitlife-blog/internal/migrate"
	"fitlife-blog/internal/storage"
)

func main() {
	down := flag.Bool("down", false, "Revert all Postgres migrations instead of applying them")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	if *down {
		if cfg.StoreDriver != config.DriverPostgres {
			logger.Fatalf("-down is only supported for the postgres store, got %s", cfg.StoreDriver)
		}
		pool, err := db.ConnectPostgres(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		if err := migrate.Rollback(ctx, pool); err != nil {
			logger.Fatalf("rollback migrations: %v", err)
		}
		logger.Println("migrations reverted")
		return
	}

	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.Prepare(ctx); err != nil {
		logger.Fatalf("prepare %s store: %v", store.Driver, err)
	}

	logger.Printf("%s store prepared", store.Driver)
}
