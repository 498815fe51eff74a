package config

import (
	"os"
	"strings"
)

const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the process settings read from the environment.
// Nothing below this package calls os.Getenv.
type Config struct {
	Port          string
	StorageDriver string
	StorageDir    string
	DatabaseDSN   string
	// DBDebug turns on gorm statement logging (DB_DEBUG=1).
	DBDebug bool

	KVTable            string
	DynamoDBEndpoint   string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	GeminiAPIKey string
	GeminiModel  string
}

func FromEnv() Config {
	return Config{
		Port:               getenvDefault("PORT", "8080"),
		StorageDriver:      strings.ToLower(getenvDefault("STORAGE_DRIVER", DriverFile)),
		StorageDir:         getenvDefault("STORAGE_DIR", "./data"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		DBDebug:            os.Getenv("DB_DEBUG") == "1",
		KVTable:            getenvDefault("KV_TABLE", "joinerypro_kv"),
		DynamoDBEndpoint:   strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getenvDefault("GEMINI_MODEL", "gemini-2.0-flash"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
