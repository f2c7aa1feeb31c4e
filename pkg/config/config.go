package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	DatabaseFile     string
	RedisAddr        string
	SecretKey        string
	PublicURL        string
	ApiAddr          string
	TelegramBotToken string
	OwnerID          int64
)

// Load reads the environment once at startup. Required variables abort the process.
func Load() {
	// Carrega .env apenas se existir, para desenvolvimento local.
	_ = godotenv.Load()

	RedisAddr = mustGetEnv("REDIS_HOST")
	SecretKey = mustGetEnv("SECRET_KEY")
	PublicURL = mustGetEnv("PUBLIC_URL")
	DatabaseFile = getEnv("DATABASE_FILE", "frametrain.db")
	ApiAddr = getEnv("API_ADDR", ":7000")

	// notificacoes opcionais
	TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if TelegramBotToken != "" {
		OwnerID = mustGetEnvInt64("OWNER_ID")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return v
}

func mustGetEnvInt64(key string) int64 {
	v := mustGetEnv(key)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return n
}
