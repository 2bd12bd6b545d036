package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port                  int    `mapstructure:"PORT"`
	Env                   string `mapstructure:"APP_ENV"` // development | production
	RequestTimeoutSeconds int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`

	// Geocoding
	GeocodeBaseURL        string `mapstructure:"GEOCODE_BASE_URL"`
	GeocodeUserAgent      string `mapstructure:"GEOCODE_USER_AGENT"`
	GeocodePais           string `mapstructure:"GEOCODE_PAIS"`
	GeocodeTimeoutSeconds int    `mapstructure:"GEOCODE_TIMEOUT_SECONDS"`

	// Row store (embedded SQLite fallback)
	SQLitePath string `mapstructure:"SQLITE_PATH"`

	// Document store (Firestore), selected when the credentials file loads
	FirebaseCredentials string `mapstructure:"FIREBASE_CREDENTIALS"`
	FirestoreProjectID  string `mapstructure:"FIRESTORE_PROJECT_ID"`
	FirestoreCollection string `mapstructure:"FIRESTORE_COLLECTION"`

	// Blob store for product photos (document backend only, optional)
	StorageBucket string `mapstructure:"STORAGE_BUCKET"`

	// Redis, optional geocode result cache; empty disables caching
	RedisURL string `mapstructure:"REDIS_URL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODE_USER_AGENT", "greenhouse_project_pap_guilherme")
	viper.SetDefault("GEOCODE_PAIS", "Portugal")
	viper.SetDefault("GEOCODE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SQLITE_PATH", "estufa.db")
	viper.SetDefault("FIREBASE_CREDENTIALS", "firebase_credentials.json")
	viper.SetDefault("FIRESTORE_COLLECTION", "produtores")

	// Keys without a meaningful default still need registering: AutomaticEnv
	// does not enumerate keys, so Unmarshal never sees env-only values for
	// unknown keys.
	viper.SetDefault("FIRESTORE_PROJECT_ID", "")
	viper.SetDefault("STORAGE_BUCKET", "")
	viper.SetDefault("REDIS_URL", "")

	// Optional .env file for local development; does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
