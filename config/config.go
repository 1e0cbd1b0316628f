package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DBPath         string
	UploadDir      string
	MaxUploadBytes int64
	JWTSecret      string
	ProfilesPath   string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPFrom       string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		DBPath:         get("DB_PATH", "greenhouse.db"),
		UploadDir:      get("UPLOAD_DIR", "public/uploads"),
		MaxUploadBytes: int64(getInt("MAX_UPLOAD_MB", 8)) * 1024 * 1024,
		JWTSecret:      get("JWT_SECRET", "dev-secret-change-me"),
		ProfilesPath:   get("PROFILES_PATH", "profiles.yml"),
		SMTPHost:       get("SMTP_HOST", ""),
		SMTPPort:       getInt("SMTP_PORT", 587),
		SMTPUser:       get("SMTP_USER", ""),
		SMTPPass:       get("SMTP_PASS", ""),
		SMTPFrom:       get("SMTP_FROM", "no-reply@smartgreenhouse.com"),
	}
	log.Printf("[cfg] port=%s db=%s uploads=%s", cfg.Port, cfg.DBPath, cfg.UploadDir)
	return cfg
}
