package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret              string
	DbHost                 string
	DbPort                 string
	DbUser                 string
	DbPassword             string
	DbName                 string
	ServerPort             string
	Issuer                 string
	MinioEndpoint          string
	MinioAccessKey         string
	MinioSecretKey         string
	MinioUseSSL            bool
	MinioInsecure          bool
	MinioBucket            string
	PropagationConcurrency = 4
	GatewayTimeout         = 10 * time.Second
	DefaultLocale          = "en"
	DownloadURLExpiry      = 15 * time.Minute
	FormPurgeRetention     = 30 * 24 * time.Hour
	FormPurgeInterval      = 24 * time.Hour
	// AllowedOriginPrefixes are matched with strings.HasPrefix by the CORS middleware.
	AllowedOriginPrefixes = []string{"http://localhost:", "http://127.0.0.1:"}
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "workflow")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("Issuer", "workflow")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "attachments")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MinioInsecure, _ = strconv.ParseBool(getEnv("MINIO_INSECURE", "false"))

	PropagationConcurrency = getEnvInt("PROPAGATION_CONCURRENCY", 4)
	GatewayTimeout = getEnvDuration("GATEWAY_TIMEOUT", 10*time.Second)
	DefaultLocale = getEnv("DEFAULT_LOCALE", "en")
	DownloadURLExpiry = getEnvDuration("DOWNLOAD_URL_EXPIRY", 15*time.Minute)
	FormPurgeRetention = getEnvDuration("FORM_PURGE_RETENTION", 30*24*time.Hour)
	FormPurgeInterval = getEnvDuration("FORM_PURGE_INTERVAL", 24*time.Hour)
	AllowedOriginPrefixes = getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:", "http://127.0.0.1:"})
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
