package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by parseEnv.
const (
	EnvHTTPAddr        = "SPORTTOGETHER_HTTP_ADDR"
	EnvDatabaseDSN     = "DATABASE_URL"
	EnvSecretKey       = "JWT_SECRET_KEY"
	EnvSessionValidity = "SESSION_VALIDITY_MINUTES"
	EnvS3RootUser      = "S3_ROOT_USER"
	EnvS3RootPassword  = "S3_ROOT_PASSWORD"
	EnvS3Bucket        = "S3_BUCKET"
	EnvS3Region        = "S3_REGION"
	EnvS3BaseEndpoint  = "S3_BASE_ENDPOINT"
	EnvCORSOrigins     = "CORS_ORIGINS"
	EnvLogLevel        = "LOG_LEVEL"
)

// dotenvFiles is the list of files godotenv reads before the environment is
// consulted. A missing file is not an error.
var dotenvFiles = []string{".env"}

// parseEnv overlays config with environment variables. Variables already set
// in the process environment win over the ones in .env. It panics when a
// numeric variable does not parse.
func parseEnv(config *Config) {
	_ = godotenv.Load(dotenvFiles...)

	setString(&config.HTTPAddr, os.Getenv(EnvHTTPAddr))
	setString(&config.DatabaseDSN, os.Getenv(EnvDatabaseDSN))
	setString(&config.SecretKey, os.Getenv(EnvSecretKey))

	if v := os.Getenv(EnvSessionValidity); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.SessionValidityDuration = time.Duration(minutes) * time.Minute
	}

	setString(&config.S3RootUser, os.Getenv(EnvS3RootUser))
	setString(&config.S3RootPassword, os.Getenv(EnvS3RootPassword))
	setString(&config.S3Bucket, os.Getenv(EnvS3Bucket))
	setString(&config.S3Region, os.Getenv(EnvS3Region))
	setString(&config.S3BaseEndpoint, os.Getenv(EnvS3BaseEndpoint))

	if v := os.Getenv(EnvCORSOrigins); v != "" {
		config.CORSOrigins = splitOrigins(v)
	}
	setString(&config.LogLevel, os.Getenv(EnvLogLevel))
}

func splitOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
