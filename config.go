package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the billing service.
type Config struct {
	Port                string
	Env                 string
	Debug               bool
	MongoURI            string
	MongoDBName         string
	JWTSecret           string
	TokenExpireMinutes  int
	AuthRatePerMinute   int
	AuthRateBurst       int
	AllowedOrigins      string
	UploadDir           string
	StorageBackend      string // "local" or "s3"
	S3Bucket            string
	RedisAddr           string
}

// LoadConfig loads environment variables into a Config struct and validates
// the required ones. A .env file is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDBName:    os.Getenv("MONGODB_DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		UploadDir:      os.Getenv("UPLOAD_DIR"),
		StorageBackend: os.Getenv("STORAGE_BACKEND"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDBName == "" {
		cfg.MongoDBName = "restaurant_db"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = "local"
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "http://localhost:3000"
	}

	cfg.Debug, _ = strconv.ParseBool(os.Getenv("DEBUG"))

	cfg.TokenExpireMinutes = 60
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %q", v)
		}
		cfg.TokenExpireMinutes = minutes
	}

	cfg.AuthRatePerMinute = 100
	if v := os.Getenv("AUTH_RATE_PER_MINUTE"); v != "" {
		perMinute, err := strconv.Atoi(v)
		if err != nil || perMinute <= 0 {
			return nil, fmt.Errorf("invalid AUTH_RATE_PER_MINUTE: %q", v)
		}
		cfg.AuthRatePerMinute = perMinute
	}

	cfg.AuthRateBurst = 50
	if v := os.Getenv("AUTH_RATE_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("invalid AUTH_RATE_BURST: %q", v)
		}
		cfg.AuthRateBurst = burst
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.StorageBackend == "s3" && cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_BACKEND=s3")
	}

	return cfg, nil
}
