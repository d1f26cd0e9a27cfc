package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	JWTSecret string

	RedisURL string

	AssistantURL string
	GeminiAPIKey string

	AllowedOrigins []string
}

// Load reads configuration from the environment (a .env file is honored
// when present). JWT_SECRET_KEY has no safe default and is required.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "gym_agent")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("ASSISTANT_API_URL", "http://localhost:8000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	jwtSecret := viper.GetString("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	return &Config{
		Port:           viper.GetString("PORT"),
		DBHost:         viper.GetString("DB_HOST"),
		DBUser:         viper.GetString("DB_USER"),
		DBPassword:     viper.GetString("DB_PASSWORD"),
		DBName:         viper.GetString("DB_NAME"),
		DBPort:         viper.GetString("DB_PORT"),
		DBSSLMode:      viper.GetString("DB_SSLMODE"),
		JWTSecret:      jwtSecret,
		RedisURL:       viper.GetString("REDIS_URL"),
		AssistantURL:   viper.GetString("ASSISTANT_API_URL"),
		GeminiAPIKey:   viper.GetString("GEMINI_API_KEY"),
		AllowedOrigins: splitList(viper.GetString("ALLOWED_ORIGINS")),
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
