package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the application needs from the environment.
// Components receive it (or slices of it) at construction; nothing reads
// os.Getenv after startup.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	UploadDir string
	AppName   string

	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	return Config{
		Port:      getenv("PORT", "8000"),
		MongoURI:  getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:   getenv("MONGODB_DB", "greenfood"),
		JWTSecret: getenv("JWT_SECRET", "change-me-in-production"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
		AppName:   getenv("APP_NAME", "GreenFood API"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@greenfood.local"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
