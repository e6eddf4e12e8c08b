package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	GinMode  string
	LogLevel string

	// StorageBackend is one of gorm, bolt, redis or memory.
	StorageBackend string
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	SQLitePath     string
	BoltPath       string

	RedisHost string
	RedisPort string

	// SessionBackend is cookie or redis.
	SessionBackend string
	SessionSecret  string

	CORSOrigins  []string
	SeedSamples  bool
	OpenAIAPIKey string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	env := getEnv("ENV", "development")
	ginMode := "debug"
	if isProductionEnv(env) {
		ginMode = "release"
	}

	return &Config{
		Env:            env,
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", ginMode),
		LogLevel:       getEnv("LOG_LEVEL", ""),
		StorageBackend: getEnv("STORAGE_BACKEND", "gorm"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "hackathon"),
		DBPassword:     getEnv("DB_PASSWORD", "hackathon"),
		DBName:         getEnv("DB_NAME", "hackathon_hub"),
		SQLitePath:     getEnv("SQLITE_PATH", "hackathon_hub.db"),
		BoltPath:       getEnv("BOLT_PATH", "hackathon_hub.bolt"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		SessionBackend: getEnv("SESSION_BACKEND", "cookie"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SeedSamples:    getEnv("SEED_SAMPLES", "true") == "true",
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
	}
}

// RedisAddr returns the host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsProduction reports whether ENV names a production deployment. It drives
// secure cookies, JSON logs and the GORM log level; GIN_MODE only changes
// gin's own output.
func (c *Config) IsProduction() bool {
	return isProductionEnv(c.Env)
}

func isProductionEnv(env string) bool {
	return env == "production" || env == "prod"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
