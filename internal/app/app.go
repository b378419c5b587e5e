// Package app initializes and runs the ledger. It opens the configured
// storage backend, builds the services and report exporter, and drives the
// interactive REPL until the user exits or a termination signal arrives.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/payledger/internal/cli"
	"github.com/dmitrijs2005/payledger/internal/config"
	"github.com/dmitrijs2005/payledger/internal/logging"
	"github.com/dmitrijs2005/payledger/internal/report"
	"github.com/dmitrijs2005/payledger/internal/repositories/repomanager"
	"github.com/dmitrijs2005/payledger/internal/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repoManager repomanager.RepositoryManager
}

// NewApp opens the database (running migrations) and sets up logging.
// Logs go to stderr so they do not interleave with REPL output.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN, c.DatabaseSchema)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{config: c, logger: logger, db: db, repoManager: rm}, nil
}

func (app *App) Close() error {
	return app.db.Close()
}

// Provisioner returns the service used by the provisioning tool.
func (app *App) Provisioner() *services.ProvisionService {
	return services.NewProvisionService(app.db, app.repoManager, app.logger)
}

func (app *App) newSink(ctx context.Context) (report.Sink, error) {
	switch app.config.ReportSink {
	case config.SinkFile, "":
		return &report.FileSink{Dir: app.config.ReportDir}, nil
	case config.SinkS3:
		return report.NewS3Sink(ctx, report.S3Config{
			Region:       app.config.S3Region,
			Endpoint:     app.config.S3BaseEndpoint,
			AccessKey:    app.config.S3AccessKey,
			SecretKey:    app.config.S3SecretKey,
			Bucket:       app.config.S3Bucket,
			UsePathStyle: app.config.S3UsePathStyle,
		})
	default:
		return nil, fmt.Errorf("unsupported report sink %q", app.config.ReportSink)
	}
}

func (app *App) newCLI(ctx context.Context, in io.Reader, out io.Writer) (*cli.App, error) {
	renderer, err := report.NewRenderer(app.config.ReportFormat)
	if err != nil {
		return nil, err
	}
	sink, err := app.newSink(ctx)
	if err != nil {
		return nil, err
	}

	exporter := report.NewExporter(renderer, sink, app.logger)
	as := services.NewAuthService(app.db, app.repoManager, app.logger)
	ls := services.NewLedgerService(app.db, app.repoManager, app.logger)

	return cli.NewApp(as, ls, exporter, in, out), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the REPL on in/out. It returns when the REPL ends or when ctx
// is cancelled; a blocked terminal read is abandoned in that case.
func (app *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	repl, err := app.newCLI(ctx, in, out)
	if err != nil {
		return err
	}

	app.logger.Info(ctx, "Starting ledger", "driver", app.config.DatabaseDriver)
	app.initSignalHandler(cancelFunc)

	done := make(chan struct{})
	go func() {
		defer close(done)
		repl.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		app.logger.Info(ctx, "Interrupted, shutting down")
	}
	return nil
}
