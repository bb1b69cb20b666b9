package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	DB      DatabaseConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Upload  UploadConfig
	Resend  ResendConfig
}

type ServerConfig struct {
	Port string
	// TrustProxy enables the X-Forwarded-For header as the client IP
	// source. Leave disabled unless the app sits behind a known proxy.
	TrustProxy bool
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type UploadConfig struct {
	Driver string // "local" or "s3"
	Dir    string
	Bucket string
	Region string
}

type ResendConfig struct {
	APIKey     string
	AdminEmail string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "5000"),
			TrustProxy: getEnv("TRUSTED_PROXY", "") == "true",
		},
		DB: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "nicehomes-dev-secret"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")),
		},
		Upload: UploadConfig{
			Driver: getEnv("STORAGE_DRIVER", "local"),
			Dir:    getEnv("UPLOAD_DIR", "./uploads"),
			Bucket: getEnv("AWS_BUCKET_NAME", "nicehomes-uploads"),
			Region: getEnv("AWS_REGION", "ap-south-1"),
		},
		Resend: ResendConfig{
			APIKey:     getEnv("RESEND_API_KEY", ""),
			AdminEmail: getEnv("ADMIN_NOTIFY_EMAIL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
