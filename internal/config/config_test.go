package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "payledger.db", c.DatabaseDSN)
	assert.Equal(t, "ledger", c.DatabaseSchema)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "reports", c.ReportDir)
	assert.Equal(t, "text", c.ReportFormat)
	assert.Equal(t, SinkFile, c.ReportSink)
	assert.Equal(t, "payledger", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "http://127.0.0.1:9000", c.S3BaseEndpoint)
	assert.True(t, c.S3UsePathStyle)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	origEnv := envFile
	t.Cleanup(func() { envFile = origEnv })
	envFile = "does-not-exist.env"

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, defaults(), c)
}

func TestLoadConfig_LayerPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	origEnv := envFile
	t.Cleanup(func() { envFile = origEnv })
	envFile = "does-not-exist.env"

	t.Setenv("LEDGER_DB_DSN", "env.db")
	t.Setenv("LEDGER_LOG_LEVEL", "debug")
	t.Setenv("LEDGER_REPORT_FORMAT", "json")

	path := writeTempJSON(t, "", "", map[string]any{
		"log_level":  "warn",
		"report_dir": "json-reports",
	})
	os.Args = []string{"testbin", "-c", path, "-o", "flag-reports"}

	c := LoadConfig()
	assert.Equal(t, "env.db", c.DatabaseDSN, "env over defaults")
	assert.Equal(t, "warn", c.LogLevel, "json over env")
	assert.Equal(t, "json", c.ReportFormat, "env kept when json silent")
	assert.Equal(t, "flag-reports", c.ReportDir, "flags over json")
}
