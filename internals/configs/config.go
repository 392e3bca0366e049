package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret    string
	CronSecret   string
	OpenAIAPIKey string
	OpenAIModel  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	CronSecret = GetEnv("CRON_SECRET")
	OpenAIAPIKey = GetEnv("OPENAI_API_KEY")
	OpenAIModel = GetEnv("OPENAI_MODEL", "gpt-4o-mini")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}

	if CronSecret == "" {
		log.Println("⚠️ CRON_SECRET is not set, the FAQ cron endpoint will reject all calls")
	}

	if OpenAIAPIKey == "" {
		log.Println("⚠️ OPENAI_API_KEY is not set, FAQ generation is disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt reads an integer env var with a fallback.
func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
