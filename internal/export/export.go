// Package export turns an assembled report payload into a downloadable
// artifact. Rendering is pure; writing the artifact is delegated to a
// Downloader collaborator so no partial file is ever exposed on a render
// failure.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"nowgo/internal/notify"
	"nowgo/internal/report"
)

// Artifact is a finished export: bytes plus the metadata a download
// boundary needs.
type Artifact struct {
	Filename string
	MIME     string
	Data     []byte
	Pages    int
}

// Renderer produces an artifact from a payload.
type Renderer interface {
	Render(p report.Payload) (Artifact, error)
}

// Downloader hands a finished artifact to the host environment.
type Downloader interface {
	Download(a Artifact) error
}

// DirDownloader writes artifacts into a directory, creating it on demand.
type DirDownloader struct {
	Dir string
}

func (d DirDownloader) Download(a Artifact) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", d.Dir, err)
	}
	path := filepath.Join(d.Dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Exporter orchestrates render, download and outcome notification. Exactly
// one notification is emitted per Export call: a success toast, or an error
// toast when either stage fails. A failed render never reaches the
// downloader.
type Exporter struct {
	Renderer   Renderer
	Downloader Downloader
	Notifier   notify.Notifier
}

// Export renders p and hands the artifact to the downloader.
func (e *Exporter) Export(p report.Payload) error {
	a, err := e.Renderer.Render(p)
	if err != nil {
		e.notifyFailure(err)
		return fmt.Errorf("render report: %w", err)
	}
	if err := e.Downloader.Download(a); err != nil {
		e.notifyFailure(err)
		return fmt.Errorf("download artifact: %w", err)
	}
	e.notify(notify.Notification{
		Title:       "Export complete",
		Description: fmt.Sprintf("Report saved as %s (%d pages)", a.Filename, a.Pages),
		Severity:    notify.SeverityInfo,
	})
	return nil
}

func (e *Exporter) notifyFailure(err error) {
	e.notify(notify.Notification{
		Title:       "Export failed",
		Description: "The report could not be generated. " + err.Error(),
		Severity:    notify.SeverityError,
	})
}

func (e *Exporter) notify(n notify.Notification) {
	if e.Notifier != nil {
		e.Notifier.Notify(n)
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the artifact name from the company name and generation
// date: lowercased, whitespace collapsed to single dashes, date-suffixed.
// An empty company name falls back to "report".
func Filename(company string, date time.Time, ext string) string {
	base := strings.ToLower(strings.TrimSpace(company))
	base = whitespaceRun.ReplaceAllString(base, "-")
	if base == "" {
		base = "report"
	}
	return fmt.Sprintf("%s-%s.%s", base, date.Format("2006-01-02"), ext)
}
