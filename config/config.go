package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultJWTSecret is only meant for local runs. A warning is logged when it is in use.
const DefaultJWTSecret = "mysecrettoken"

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	Storage     string
	CORSOrigins string
	LogLevel    string
	StaticDir   string
	DBTimeout   time.Duration
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using system environment variables")
	}

	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "blogease"),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		Storage:     strings.ToLower(getEnv("STORAGE", StorageMongo)),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StaticDir:   getEnv("STATIC_DIR", "./web"),
		DBTimeout:   getDuration("DB_TIMEOUT", 5*time.Second),
	}
	return cfg
}

// InsecureSecret reports whether the token secret is the built-in default.
func (c Config) InsecureSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}
