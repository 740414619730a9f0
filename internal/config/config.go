package config

import (
	"os"
	"strconv"
)

// Storage backends for prescription images.
const (
	StorageLocal = "local"
	StorageMinIO = "minio"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	SwaggerHost string

	// DBDriver is one of sqlite, mysql or postgres. DBDSN is ignored for sqlite.
	DBDriver   string
	DBDSN      string
	SQLitePath string
	ResetDB    bool

	UploadDir      string
	StaticDir      string
	IndexFile      string
	MaxUploadBytes int64

	StorageBackend string
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	SeedSource string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8000"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBDSN:      os.Getenv("DB_DSN"),
		SQLitePath: getEnv("SQLITE_PATH", "medicine_db.sqlite"),
		ResetDB:    getEnvBool("RESET_DB", false),

		UploadDir:      getEnv("UPLOAD_DIR", "prescriptions"),
		StaticDir:      getEnv("STATIC_DIR", "web"),
		IndexFile:      getEnv("INDEX_FILE", "web/index.html"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 0),

		StorageBackend: getEnv("STORAGE_BACKEND", StorageLocal),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinIOSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "prescriptions"),
		MinIOUseSSL:    getEnvBool("MINIO_USE_SSL", false),

		SeedSource: getEnv("SEED_SOURCE", "seed/medicines.json"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
