package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"shopstack-backend/config"
	"shopstack-backend/controllers"
	"shopstack-backend/media"
	"shopstack-backend/routes"
	"shopstack-backend/store"
)

func main() {
	cfg := config.Load()

	// A failed ping is logged but does not stop the server: requests fail
	// until the driver re-establishes connectivity.
	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Println("⚠️ ", err)
	}
	if client == nil {
		log.Fatal("could not build MongoDB client")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DatabaseName)
	st := store.New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Println("⚠️  Could not ensure indexes:", err)
	}
	cancel()

	var storage media.Storage
	if cfg.CloudinaryURL != "" {
		storage, err = media.NewCloudinary(cfg.CloudinaryURL, "shopstack")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("📷 Image uploads go to Cloudinary")
	} else {
		storage, err = media.NewDisk(cfg.UploadDir, cfg.StaticPrefix)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("📁 Image uploads stored in %s\n", cfg.UploadDir)
	}

	ctrl := controllers.New(st, storage)
	r := routes.Setup(ctrl, cfg)

	fmt.Printf("🚀 Server running on port %s\n", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
