package providers

import (
	"context"
	"embed"
	"log/slog"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
)

//go:embed templates/report.html.tmpl
var templatesFS embed.FS

var reportTmpl = template.Must(template.ParseFS(templatesFS, "templates/report.html.tmpl"))

// MemoryReporter renders reports in-process. It rejects temperatures outside
// [-30, 50] and units other than celsius/fahrenheit.
type MemoryReporter struct {
	shouldFail bool
	now        func() time.Time
}

// MemoryReporterOption customizes a MemoryReporter.
type MemoryReporterOption func(*MemoryReporter)

// WithClock replaces the clock used to date reports.
func WithClock(now func() time.Time) MemoryReporterOption {
	return func(r *MemoryReporter) { r.now = now }
}

// NewMemoryReporter returns a reporter; with shouldFail set every request yields None.
func NewMemoryReporter(shouldFail bool, opts ...MemoryReporterOption) *MemoryReporter {
	r := &MemoryReporter{shouldFail: shouldFail, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type reportView struct {
	Temperature string
	Units       weather.Units
	Comment     string
	Date        string
}

func (r *MemoryReporter) GetWeatherReport(_ context.Context, req weather.ReportRequest) option.Option[string] {
	if r.shouldFail {
		return option.None[string]()
	}
	if err := validate.Struct(req); err != nil {
		slog.Debug("report request rejected", "error", err)
		return option.None[string]()
	}

	var b strings.Builder
	err := reportTmpl.Execute(&b, reportView{
		Temperature: strconv.FormatFloat(req.Temperature, 'f', -1, 64),
		Units:       req.Units,
		Comment:     req.Comment,
		Date:        r.now().UTC().Format(time.DateOnly),
	})
	if err != nil {
		slog.Error("failed to render weather report", "error", err)
		return option.None[string]()
	}

	return option.Some(b.String())
}
