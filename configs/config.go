package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DatabaseURL   string
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	FrontendURL   string
	AppEnv        string
	AdminEmail    string
	AdminPassword string
	UploadDir     string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:   getEnv("DATABASE_URL", "kiik69.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(24) * time.Hour,
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),
		AppEnv:        getEnv("APP_ENV", "development"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
