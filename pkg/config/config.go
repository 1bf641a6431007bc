package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	StorageBackend string
	SQLitePath     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	SnapshotPrefix string

	FirebaseProject            string
	FirebaseServiceAccountPath string
	FirebaseServiceAccountJSON string
	StorageBucket              string

	AuthMode  string
	JWKSURL   string
	JWTSecret string
	JWTExpiry int64

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	CatalogPath            string
	ActivityLogRetention   int
	RetentionSchedule      string
	SnapshotFlushSchedule  string
	AssistantRatePerMinute int

	OwnerProviderID   string
	OwnerProviderName string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		SQLitePath:     getEnv("SQLITE_PATH", "skillio.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        int(getEnvAsInt64("REDIS_DB", 0)),
		SnapshotPrefix: getEnv("SNAPSHOT_PREFIX", "skillio_v6_"),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		FirebaseServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		StorageBucket:              getEnv("STORAGE_BUCKET", ""),

		AuthMode:  getEnv("AUTH_MODE", "jwt"),
		JWKSURL:   getEnv("JWKS_URL", "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"),
		JWTSecret: getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiry: getEnvAsInt64("JWT_EXPIRY", 24*60*60),

		AdminUsername:     getEnv("ADMIN_USERNAME", "owner"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),

		CatalogPath:            getEnv("CATALOG_PATH", ""),
		ActivityLogRetention:   int(getEnvAsInt64("ACTIVITY_LOG_RETENTION", 1000)),
		RetentionSchedule:      getEnv("RETENTION_SCHEDULE", "@hourly"),
		SnapshotFlushSchedule:  getEnv("SNAPSHOT_FLUSH_SCHEDULE", "@every 5m"),
		AssistantRatePerMinute: int(getEnvAsInt64("ASSISTANT_RATE_PER_MINUTE", 10)),

		OwnerProviderID:   getEnv("OWNER_PROVIDER_ID", "user_1"),
		OwnerProviderName: getEnv("OWNER_PROVIDER_NAME", "Kyla Ndungu (Owner)"),
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
