package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the service reads from the environment.
type Config struct {
	Port        int
	DatabaseURL string

	YelpAPIKey  string
	YelpBaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DetailTTL     time.Duration

	JWTSecret string
}

// Load reads configuration from the environment. A .env file is applied first
// when present so local runs match docker-compose.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("missing env DATABASE_URL")
	}

	yelpKey := os.Getenv("YELP_API_KEY")
	if yelpKey == "" {
		return nil, fmt.Errorf("missing env YELP_API_KEY")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("missing env JWT_SECRET")
	}

	port, err := intEnv("PORT", 8080)
	if err != nil {
		return nil, err
	}

	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	ttlSeconds, err := intEnv("DETAIL_CACHE_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:          port,
		DatabaseURL:   dbURL,
		YelpAPIKey:    yelpKey,
		YelpBaseURL:   stringEnv("YELP_BASE_URL", "https://api.yelp.com/v3"),
		RedisAddr:     stringEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		DetailTTL:     time.Duration(ttlSeconds) * time.Second,
		JWTSecret:     secret,
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}
