package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// envFile is loaded if present. Variables already set in the process
// environment win over the file.
var envFile = ".env"

// parseEnv overlays LEDGER_* environment variables onto config.
func parseEnv(config *Config) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	str("LEDGER_DB_DRIVER", &config.DatabaseDriver)
	str("LEDGER_DB_DSN", &config.DatabaseDSN)
	str("LEDGER_DB_SCHEMA", &config.DatabaseSchema)
	str("LEDGER_LOG_LEVEL", &config.LogLevel)
	str("LEDGER_REPORT_DIR", &config.ReportDir)
	str("LEDGER_REPORT_FORMAT", &config.ReportFormat)
	str("LEDGER_REPORT_SINK", &config.ReportSink)
	str("LEDGER_S3_ACCESS_KEY", &config.S3AccessKey)
	str("LEDGER_S3_SECRET_KEY", &config.S3SecretKey)
	str("LEDGER_S3_BUCKET", &config.S3Bucket)
	str("LEDGER_S3_REGION", &config.S3Region)
	str("LEDGER_S3_ENDPOINT", &config.S3BaseEndpoint)

	if v, ok := os.LookupEnv("LEDGER_S3_PATH_STYLE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.S3UsePathStyle = b
	}
}
