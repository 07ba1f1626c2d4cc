package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"al_jazira_website/config"
	"al_jazira_website/services"
)

func main() {
	dir := flag.String("dir", "static", "Directory to publish")
	prefix := flag.String("prefix", "static", "Key prefix inside the bucket")
	dryRun := flag.Bool("dry-run", false, "List what would be uploaded without uploading")
	localDir := flag.String("local", "", "Mirror into this directory instead of R2")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var store services.StorageProvider
	if *localDir != "" {
		store = services.NewLocalStorage(*localDir)
		log.Printf("Publishing %s to local directory %s", *dir, *localDir)
	} else {
		r2, err := services.NewR2Storage(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize R2 storage: %v", err)
		}
		if !*dryRun {
			if err := r2.CheckBucket(ctx); err != nil {
				log.Fatalf("%v", err)
			}
		}
		store = r2
		log.Printf("Publishing %s to R2 bucket %s", *dir, cfg.R2BucketName)
	}

	results, err := services.PublishAssets(ctx, store, *dir, *prefix, *dryRun)
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-40s %8d  %-28s %s\n", r.Key, r.FileSize, r.MimeType, r.URL)
	}
	if err != nil {
		log.Fatalf("Publish failed after %d file(s): %v", len(results), err)
	}

	if *dryRun {
		log.Printf("Dry run: %d file(s) would be published", len(results))
		return
	}
	log.Printf("Published %d file(s)", len(results))
	if cfg.R2PublicURL == "" && *localDir == "" {
		log.Println("[WARNING] R2_PUBLIC_URL is not set; the site will keep serving assets from /static")
	}
}
