package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/payledger/internal/flagx"
)

// JsonConfig is the on-disk form of Config. Absent fields leave the
// current value untouched.
type JsonConfig struct {
	DatabaseDriver string `json:"database_driver"`
	DatabaseDSN    string `json:"database_dsn"`
	DatabaseSchema string `json:"database_schema"`
	LogLevel       string `json:"log_level"`
	ReportDir      string `json:"report_dir"`
	ReportFormat   string `json:"report_format"`
	ReportSink     string `json:"report_sink"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3UsePathStyle *bool  `json:"s3_use_path_style"`
}

// parseJson loads the file named by -c / -config, if any, into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&config.DatabaseDriver, c.DatabaseDriver)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.DatabaseSchema, c.DatabaseSchema)
	set(&config.LogLevel, c.LogLevel)
	set(&config.ReportDir, c.ReportDir)
	set(&config.ReportFormat, c.ReportFormat)
	set(&config.ReportSink, c.ReportSink)
	set(&config.S3AccessKey, c.S3AccessKey)
	set(&config.S3SecretKey, c.S3SecretKey)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.S3UsePathStyle != nil {
		config.S3UsePathStyle = *c.S3UsePathStyle
	}
}
