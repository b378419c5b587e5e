package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/payledger/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-k string   database driver (sqlite, postgres)
//	-d string   database DSN
//	-m string   postgres schema
//	-l string   log level
//	-o string   report output directory
//	-f string   report format (text, json)
//	-s string   report sink (file, s3)
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//
// os.Args is filtered with flagx.FilterArgs first, so subcommand flags of
// other tools do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-k", "-d", "-m", "-l", "-o", "-f", "-s", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "k", config.DatabaseDriver, "database driver (sqlite, postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseSchema, "m", config.DatabaseSchema, "postgres schema")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.ReportDir, "o", config.ReportDir, "report output directory")
	fs.StringVar(&config.ReportFormat, "f", config.ReportFormat, "report format (text, json)")
	fs.StringVar(&config.ReportSink, "s", config.ReportSink, "report sink (file, s3)")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
