package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fitlife-blog/internal/config"
	"fitlife-blog/internal/importer"
	articlesvc "fitlife-blog/internal/service/article"
	"fitlife-blog/internal/storage"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to an article CSV file")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	store, err := storage.Open(ctx, cfg, nil)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer store.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, articlesvc.New(store.Articles))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d articles: %v", count, err)
	}

	fmt.Printf("Imported %d articles into the %s store in %s\n", count, store.Driver, time.Since(start).Truncate(time.Millisecond))
}
