// Package config loads ledger settings from defaults, the environment
// (optionally a .env file), a JSON file and command-line flags, each layer
// overriding the previous one.
package config

// Config holds runtime settings for the ledger.
//
// Fields:
//   - DatabaseDriver: "sqlite" (modernc) or "postgres" (pgx).
//   - DatabaseDSN: driver DSN; a file path for SQLite.
//   - DatabaseSchema: Postgres schema holding the ledger tables.
//   - LogLevel: debug, info, warn or error.
//   - ReportDir / ReportFormat / ReportSink: where and how reports are exported.
//   - S3*: S3-compatible storage used when ReportSink is "s3".
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	DatabaseSchema string
	LogLevel       string
	ReportDir      string
	ReportFormat   string
	ReportSink     string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3UsePathStyle bool
}

const (
	SinkFile = "file"
	SinkS3   = "s3"
)

// LoadDefaults populates Config with local development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "payledger.db"
	c.DatabaseSchema = "ledger"
	c.LogLevel = "info"
	c.ReportDir = "reports"
	c.ReportFormat = "text"
	c.ReportSink = SinkFile
	c.S3Bucket = "payledger"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"
	c.S3UsePathStyle = true
}

// LoadConfig builds a Config by applying defaults, then the environment,
// then an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
