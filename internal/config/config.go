package config

import (
	"os"
	"strconv"
	"time"
)

// Config collects the environment-driven settings for the API server.
type Config struct {
	Port                string
	FirebaseProjectID   string
	FirebaseCredentials string // path to a service account file; empty uses default credentials
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	OpenAIModel         string
	AIInsightTimeout    time.Duration // how long an entry write waits for insight generation
	UploadDir           string
	MaxUploadBytes      int64
}

// Load reads the configuration from environment variables, applying
// development defaults where unset.
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "9092"),
		FirebaseProjectID:   os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentials: os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:       os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:         os.Getenv("OPENAI_MODEL"),
		AIInsightTimeout:    getDuration("AI_INSIGHT_TIMEOUT_SECONDS", 10*time.Second),
		UploadDir:           getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes:      getInt64("MAX_UPLOAD_BYTES", 10<<20),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
