package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds all application configuration variables.
type AppConfig struct {
	Port          string
	Env           string
	MongoMode     string
	MongoURI      string
	DatabaseName  string
	CloudinaryURL string
	UploadDir     string
	StaticPrefix  string
}

// Load reads configuration from a .env file or environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENVIRONMENT", "development"),
		MongoMode:     getEnv("MONGO_MODE", "local"),
		DatabaseName:  getEnv("MONGO_DATABASE", "shopstack"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		StaticPrefix:  "/static/uploads",
	}

	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" {
			log.Fatal("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/shopstack")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
