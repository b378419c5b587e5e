package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/logging"
	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/dmitrijs2005/payledger/internal/services"
)

// Exporter builds, renders and stores reports.
type Exporter struct {
	renderer Renderer
	sink     Sink
	logger   logging.Logger
	now      func() time.Time
}

func NewExporter(r Renderer, s Sink, l logging.Logger) *Exporter {
	return &Exporter{renderer: r, sink: s, logger: l, now: time.Now}
}

// FileName returns report_<login>_<YYYYMMDD>.<ext>.
func FileName(login string, at time.Time, ext string) string {
	return fmt.Sprintf("report_%s_%s.%s", login, at.Format("20060102"), ext)
}

// Export writes a report over selected for the session user and returns
// its location.
func (e *Exporter) Export(ctx context.Context, sess *services.Session, selected []models.PaymentView) (string, error) {
	if sess == nil {
		return "", common.ErrNotLoggedIn
	}
	login := sess.Login
	at := e.now()
	doc, err := Build(fmt.Sprintf("%s (%s)", sess.FullName, login), selected, at)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := e.renderer.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	loc, err := e.sink.Put(ctx, Artifact{
		Owner:       login,
		Name:        FileName(login, at, e.renderer.Ext()),
		ContentType: e.renderer.ContentType(),
		Body:        buf.Bytes(),
	})
	if err != nil {
		e.logger.Error(ctx, "report export failed", "login", login, "error", err.Error())
		return "", err
	}

	e.logger.Info(ctx, "report exported", "login", login, "payments", len(selected), "location", loc)
	return loc, nil
}
